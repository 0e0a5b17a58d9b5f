// Package cmd implements the CLI application to query daily equity prices.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quotes"
	"github.com/etnz/quotes/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "store")
	c.Register(&exportCmd{}, "store")

	c.Register(&getCmd{}, "queries")
	c.Register(&rangeCmd{}, "queries")
	c.Register(&dayCmd{}, "queries")
	c.Register(&inspectCmd{}, "queries")
	c.Register(&shellCmd{}, "queries")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
var dataDir = flag.String("dir", "", "Data folder holding the text files and documents, overrides the configuration")
var docFormat = flag.String("format", "", "Document format (json or msgpack), overrides the configuration")
var conversion = flag.String("conversion", "", "Price conversion of text files (truncate or exact), overrides the configuration")
var currency = flag.String("currency", "", "Currency used to display prices, overrides the configuration")
var verbose = flag.Bool("v", false, "Log every file operation to stderr")

// LoadConfig reads the configuration file and applies the command line overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.Dir = *dataDir
	}
	if *docFormat != "" {
		cfg.Format = *docFormat
	}
	if *conversion != "" {
		cfg.Conversion = *conversion
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenPipeline is the central function to open the data folder of the configuration.
func OpenPipeline(cfg *config.Config) (*quotes.Pipeline, error) {
	pc, err := cfg.Pipeline()
	if err != nil {
		return nil, err
	}
	return quotes.NewPipeline(pc, NewLogger(cfg.Log.Level, cfg.Log.Pretty))
}

// LoadStore opens the data folder, converts pending text files, and loads every
// series in memory.
//
// Files that could not be processed are reported on stderr, they do not prevent
// the other series from being used.
func LoadStore() (*config.Config, *quotes.Pipeline, subcommands.ExitStatus) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, nil, subcommands.ExitUsageError
	}
	p, err := OpenPipeline(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data folder: %v\n", err)
		return nil, nil, subcommands.ExitUsageError
	}
	report, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning data folder %q: %v\n", cfg.Dir, err)
		return nil, nil, subcommands.ExitFailure
	}
	for _, o := range report.Failed() {
		fmt.Fprintf(os.Stderr, "Warning: %s ignored: %v\n", o.File, o.Err)
	}
	return cfg, p, subcommands.ExitSuccess
}

// NewLogger creates the structured logger of the application, writing to stderr.
func NewLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05", NoColor: !pretty}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
