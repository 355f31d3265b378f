package taxseq

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func Test_writeCSV(t *testing.T) {
	dir := t.TempDir()

	type args struct {
		records []Record
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"one row per record",
			args{
				records: []Record{
					{Accession: "AB1.1", Definition: "first record", Seq: "ATG"},
					{Accession: "AB2.1", Definition: "second, with comma", Seq: "ATGCA"},
				},
			},
			"Accession,Length,Description\nAB1.1,3,first record\nAB2.1,5,\"second, with comma\"\n",
		},
		{
			"no records still writes the header",
			args{
				records: []Record{},
			},
			"Accession,Length,Description\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".csv")
			if err := writeCSV(tt.args.records, out); err != nil {
				t.Fatalf("writeCSV() error = %v", err)
			}

			dat, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("failed to read the output file: %v", err)
			}
			if got := string(dat); got != tt.want {
				t.Errorf("writeCSV() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_writeCSV_rerun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "records.csv")
	records := []Record{
		{Accession: "AB1.1", Definition: "first record", Seq: "ATG"},
	}

	if err := writeCSV(records, out); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	// a rerun with the same input overwrites with identical bytes
	if err := writeCSV(records, out); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("writeCSV() rerun wrote %q, want %q", second, first)
	}
}

func Test_writeFasta(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "records.fasta")
	records := []Record{
		{Accession: "AB1.1", Definition: "first record", Seq: "ATGCATGC"},
		{Accession: "AB2.1", Definition: "second record", Seq: "GATTACA"},
	}

	if err := writeFasta(records, out); err != nil {
		t.Fatalf("writeFasta() error = %v", err)
	}

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read the output file: %v", err)
	}
	contents := string(dat)

	for _, r := range records {
		if !strings.Contains(contents, ">"+r.Accession) {
			t.Errorf("writeFasta() output is missing the header for %s", r.Accession)
		}
		if !strings.Contains(contents, r.Seq) {
			t.Errorf("writeFasta() output is missing the sequence for %s", r.Accession)
		}
	}
}
