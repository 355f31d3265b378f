package taxseq

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_byLengthDesc(t *testing.T) {
	type args struct {
		records []Record
	}
	tests := []struct {
		name string
		args args
		want []Record
	}{
		{
			"longest first",
			args{
				records: []Record{
					{Accession: "A", Seq: "AT"},
					{Accession: "B", Seq: "ATGCAT"},
					{Accession: "C", Seq: "ATGC"},
				},
			},
			[]Record{
				{Accession: "B", Seq: "ATGCAT"},
				{Accession: "C", Seq: "ATGC"},
				{Accession: "A", Seq: "AT"},
			},
		},
		{
			"ties keep their fetch order",
			args{
				records: []Record{
					{Accession: "A", Seq: "ATGC"},
					{Accession: "B", Seq: "ATGC"},
					{Accession: "C", Seq: "ATGCAT"},
				},
			},
			[]Record{
				{Accession: "C", Seq: "ATGCAT"},
				{Accession: "A", Seq: "ATGC"},
				{Accession: "B", Seq: "ATGC"},
			},
		},
		{
			"empty",
			args{
				records: []Record{},
			},
			[]Record{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := byLengthDesc(tt.args.records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("byLengthDesc() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_byLengthDesc_copies(t *testing.T) {
	records := []Record{
		{Accession: "A", Seq: "AT"},
		{Accession: "B", Seq: "ATGC"},
	}

	byLengthDesc(records)

	// the input keeps its fetch order
	if records[0].Accession != "A" {
		t.Errorf("byLengthDesc() reordered its input")
	}
}

func Test_plotLengths(t *testing.T) {
	dir := t.TempDir()

	type args struct {
		records []Record
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"records",
			args{
				records: []Record{
					{Accession: "AB1.1", Seq: "ATGCATGC"},
					{Accession: "AB2.1", Seq: "ATGC"},
					{Accession: "AB3.1", Seq: "ATGCATGCATGC"},
				},
			},
		},
		{
			// no data points is an empty chart, not an error
			"no records",
			args{
				records: []Record{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".png")
			if err := plotLengths(tt.args.records, out); err != nil {
				t.Fatalf("plotLengths() error = %v", err)
			}

			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("plotLengths() wrote no chart: %v", err)
			}
			if info.Size() == 0 {
				t.Errorf("plotLengths() wrote an empty file")
			}
		})
	}
}
