package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quotes/renderer"
	"github.com/google/subcommands"
)

type rangeCmd struct{}

func (*rangeCmd) Name() string     { return "range" }
func (*rangeCmd) Synopsis() string { return "aggregate the prices of a symbol over a range of days" }
func (*rangeCmd) Usage() string {
	return `quotes range <symbol> <from> <to>

  Displays the opening price on <from>, the closing price on <to>, the highest
  and lowest prices, and the total volume traded in between, both days
  included. <from> must be strictly before <to>, and both days must have
  prices.

Usage Examples:
$ quotes range AAPL 2020-01-02 2020-01-31
`
}

func (*rangeCmd) SetFlags(f *flag.FlagSet) {}

func (*rangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: range requires a symbol and two dates")
		return subcommands.ExitUsageError
	}
	days, err := parseDates(f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, store, status := LoadStore()
	if status != subcommands.ExitSuccess {
		return status
	}
	q, err := quoteRange(store, f.Arg(0), days[0], days[1], cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderQuote(q))
	return subcommands.ExitSuccess
}
