package cmd

import (
	"taxseq/internal/taxseq"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Fetch nucleotide records for a taxon and summarize them by length",
	Long: `Fetch GenBank records from NCBI's nucleotide database for a taxonomic ID,
keep those whose sequence length falls within [min, max], and write a CSV
summary (accession, length, description) plus a chart of lengths in
descending order.

Searching uses the Entrez history server, so the result set is retrieved
in a single bulk fetch rather than one request per record.

Any of the email, key, taxid, min and max inputs that are not passed as
flags are prompted for interactively`,
	Run:                        taxseq.SummaryCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  taxseq summary --taxid 9606 --min 200 --max 600",
	Aliases:                    []string{"sum"},
}

// set flags
func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringP("email", "e", "", "contact email sent to NCBI with each request")
	summaryCmd.Flags().StringP("key", "k", "", "NCBI API key")
	summaryCmd.Flags().StringP("taxid", "t", "", "taxonomic ID to search for (e.g. 9606 for human)")
	summaryCmd.Flags().IntP("min", "l", 0, "minimum sequence length to keep")
	summaryCmd.Flags().IntP("max", "u", 0, "maximum sequence length to keep")
	summaryCmd.Flags().StringP("out", "o", "", "output CSV file name")
	summaryCmd.Flags().StringP("chart", "c", "", "output chart file name <PNG>")
	summaryCmd.Flags().StringP("fasta", "f", "", "also write the filtered sequences to a FASTA file")
	summaryCmd.Flags().IntP("records", "r", 0, "maximum number of records to fetch")

	// Bind the parameters to viper
	viper.BindPFlag("email", summaryCmd.Flags().Lookup("email"))
	viper.BindPFlag("key", summaryCmd.Flags().Lookup("key"))
	viper.BindPFlag("out", summaryCmd.Flags().Lookup("out"))
	viper.BindPFlag("chart", summaryCmd.Flags().Lookup("chart"))
	viper.BindPFlag("fasta", summaryCmd.Flags().Lookup("fasta"))
	viper.BindPFlag("records", summaryCmd.Flags().Lookup("records"))
}
