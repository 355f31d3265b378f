// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// EntrezConfig is settings for talking to the Entrez E-utilities
type EntrezConfig struct {
	// the Entrez database searched and fetched against
	DB string `mapstructure:"db"`

	// cap on the number of records retrieved in the bulk fetch
	RetMax int `mapstructure:"records"`
}

// OutputConfig is settings for the artifacts written after filtering
type OutputConfig struct {
	// name of the summary CSV file
	CSV string `mapstructure:"out"`

	// name of the length chart image
	Chart string `mapstructure:"chart"`

	// name of an optional FASTA file with the filtered sequences.
	// nothing is written when empty
	Fasta string `mapstructure:"fasta"`
}

// Config is the root-level settings struct and is a mix of
// defaults and command line arguments
type Config struct {
	// contact email sent to NCBI with every request
	Email string `mapstructure:"email"`

	// NCBI API key, raises the provider's rate limit
	APIKey string `mapstructure:"key"`

	// Entrez settings
	Entrez EntrezConfig `mapstructure:",squash"`

	// output artifact settings
	Output OutputConfig `mapstructure:",squash"`
}

// New returns a new Config struct populated by Viper settings
// (defaults and/or command line arguments)
func New() Config {
	viper.SetDefault("db", "nucleotide")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	if c.Entrez.RetMax < 1 {
		c.Entrez.RetMax = 1000
	}
	if c.Output.CSV == "" {
		c.Output.CSV = "records.csv"
	}
	if c.Output.Chart == "" {
		c.Output.Chart = "length_chart.png"
	}

	return c
}
