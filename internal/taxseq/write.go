package taxseq

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// csvHeader is the first row of the summary CSV
var csvHeader = []string{"Accession", "Length", "Description"}

// writeCSV writes one summary row per record to the fs at the output
// path, in fetch order, overwriting whatever was there. Zero records
// still writes the header row
func writeCSV(records []Record, filename string) (err error) {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create the output file: %v", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err = w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write the header row: %v", err)
	}
	for _, r := range records {
		row := []string{r.Accession, strconv.Itoa(r.Length()), r.Definition}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("failed to write the row for %s: %v", r.Accession, err)
		}
	}

	w.Flush()
	return w.Error()
}

// writeFasta writes the records' sequences to the fs at the output path
// as DNA FASTA, 60 bases per line
func writeFasta(records []Record, filename string) (err error) {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create the output file: %v", err)
	}
	defer out.Close()

	w := fasta.NewWriter(out, 60)
	for _, r := range records {
		s := linear.NewSeq(r.Accession, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.DNA)
		s.Desc = r.Definition
		if _, err = w.Write(s); err != nil {
			return fmt.Errorf("failed to write the sequence for %s: %v", r.Accession, err)
		}
	}

	return nil
}
