// Package taxseq turns a taxonomy ID into a length summary of the taxon's
// nucleotide records in NCBI: a CSV of accession, length and description
// per record plus a chart of the lengths in descending order.
//
// The pipeline is a single linear pass: search with the Entrez history
// server, bulk fetch the GenBank records, filter them by sequence length,
// then write the output artifacts. Any stage failure is fatal; nothing is
// written after a failed stage.
package taxseq

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"taxseq/config"

	"github.com/spf13/cobra"
)

// Record is a single nucleotide record parsed from a GenBank flat file
type Record struct {
	// the versioned accession identifying the record
	Accession string

	// the record's DEFINITION line(s), joined
	Definition string

	// the uppercased sequence from the ORIGIN block
	Seq string
}

// Length is the number of bases in the record's sequence
func (r *Record) Length() int {
	return len(r.Seq)
}

// SummaryCmd is the entry for `taxseq summary`
//
// query inputs are read from flags where given; the rest are
// prompted for on stdin
func SummaryCmd(cmd *cobra.Command, args []string) {
	taxid, err := cmd.Flags().GetString("taxid")
	if err != nil {
		log.Fatal(err)
	}

	minLen, err := cmd.Flags().GetInt("min")
	if err != nil {
		log.Fatal(err)
	}

	maxLen, err := cmd.Flags().GetInt("max")
	if err != nil {
		log.Fatal(err)
	}

	conf := config.New()

	in := bufio.NewScanner(os.Stdin)
	if conf.Email == "" {
		conf.Email = prompt(in, "Enter your email address for NCBI: ")
	}
	if conf.APIKey == "" {
		conf.APIKey = prompt(in, "Enter your NCBI API key: ")
	}
	if taxid == "" {
		taxid = prompt(in, "Enter taxonomic ID (e.g. 9606 for human): ")
	}
	if !cmd.Flags().Changed("min") {
		minLen = promptInt(in, "Enter minimum sequence length: ")
	}
	if !cmd.Flags().Changed("max") {
		maxLen = promptInt(in, "Enter maximum sequence length: ")
	}

	execSummary(conf, taxid, minLen, maxLen)
}

// execSummary runs the search, fetch, filter, export and chart stages
// against an assembled Config. Failures terminate the run: a failed
// fetch means no CSV and no chart
func execSummary(conf config.Config, taxid string, minLen, maxLen int) {
	count, hist, err := search(conf, taxid)
	if err != nil {
		log.Fatalf("failed to search %s for txid%s: %v", conf.Entrez.DB, taxid, err)
	}
	log.Printf("found %d records. Downloading and filtering...", count)

	records := []Record{}
	if count > 0 {
		if records, err = fetchRecords(conf, capRecords(conf.Entrez.RetMax, count), hist); err != nil {
			log.Fatalf("failed to fetch records for txid%s: %v", taxid, err)
		}
	}

	filtered := filterRecords(records, minLen, maxLen)
	log.Printf("%d of %d records matched the length filter", len(filtered), len(records))

	if err = writeCSV(filtered, conf.Output.CSV); err != nil {
		log.Fatalf("failed to write the summary CSV: %v", err)
	}
	log.Printf("summary written to %s", conf.Output.CSV)

	if conf.Output.Fasta != "" {
		if err = writeFasta(filtered, conf.Output.Fasta); err != nil {
			log.Fatalf("failed to write the filtered sequences: %v", err)
		}
		log.Printf("sequences written to %s", conf.Output.Fasta)
	}

	if err = plotLengths(filtered, conf.Output.Chart); err != nil {
		log.Fatalf("failed to write the length chart: %v", err)
	}
	log.Printf("chart written to %s", conf.Output.Chart)
}

// capRecords bounds the requested fetch size by the number of records
// the search actually matched
func capRecords(requested, available int) int {
	if available < requested {
		return available
	}
	return requested
}

// prompt asks for a value on stdin when it wasn't passed as a flag
func prompt(in *bufio.Scanner, msg string) string {
	fmt.Print(msg)
	if !in.Scan() {
		log.Fatalf("failed to read from stdin: %v", in.Err())
	}
	return strings.TrimSpace(in.Text())
}

// promptInt is prompt for whole-number inputs
func promptInt(in *bufio.Scanner, msg string) int {
	v, err := strconv.Atoi(prompt(in, msg))
	if err != nil {
		log.Fatalf("failed to parse a whole number: %v", err)
	}
	return v
}
