package taxseq

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// byLengthDesc returns a copy of the records sorted longest first.
// ties keep their fetch order
func byLengthDesc(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length() > sorted[j].Length()
	})

	return sorted
}

// plotLengths renders the records' lengths, longest first, as a
// line+marker chart and writes it to the fs at the output path:
// accessions along the x-axis with rotated labels, lengths up the
// y-axis. Zero records still writes an empty chart
func plotLengths(records []Record, filename string) error {
	sorted := byLengthDesc(records)

	pts := make(plotter.XYs, len(sorted))
	accessions := make([]string, len(sorted))
	for i, r := range sorted {
		pts[i].X = float64(i)
		pts[i].Y = float64(r.Length())
		accessions[i] = r.Accession
	}

	p := plot.New()
	p.Title.Text = "GenBank Sequences by Length"
	p.X.Label.Text = "Accession"
	p.Y.Label.Text = "Sequence Length"

	// accessions are categories, not a numeric axis.
	// NominalX can't take zero names, an empty chart keeps the bare axis
	if len(accessions) > 0 {
		p.NominalX(accessions...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("failed to build the length plot: %v", err)
	}
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save the chart: %v", err)
	}

	return nil
}
