package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quotes/renderer"
	"github.com/google/subcommands"
)

type convertCmd struct {
	check bool
	json  bool
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "converts the legacy text files of the data folder into documents"
}
func (*convertCmd) Usage() string {
	return `quotes convert [-check] [-json]

  Scans the data folder once. Every legacy text file is parsed, written as a
  document, verified, and then removed. A file with an invalid line is left
  untouched and reported. Documents already in the folder are loaded to check
  that they can be read.

  With -check, text files are only parsed: nothing is written nor removed.

Usage Examples:
# Converts the default data folder.
$ quotes convert

# Reports what a conversion would do, as JSON.
$ quotes -dir prices convert -check -json
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "parse text files without writing or removing anything")
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := OpenPipeline(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data folder: %v\n", err)
		return subcommands.ExitUsageError
	}

	run := p.Run
	if c.check {
		run = p.Check
	}
	report, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning data folder %q: %v\n", cfg.Dir, err)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.RenderConversion(renderer.NewConversion(report)))
	}

	if len(report.Failed()) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
