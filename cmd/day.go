package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quotes/renderer"
	"github.com/google/subcommands"
)

type dayCmd struct{}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "display the change of a symbol from the prior day" }
func (*dayCmd) Usage() string {
	return `quotes day <symbol> <date>

  Aggregates the prior calendar day and <date>: the change is the closing price
  of <date> minus the opening price of the prior day. Both days must have
  prices.
`
}

func (*dayCmd) SetFlags(f *flag.FlagSet) {}

func (*dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: day requires a symbol and a date")
		return subcommands.ExitUsageError
	}
	days, err := parseDates(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, store, status := LoadStore()
	if status != subcommands.ExitSuccess {
		return status
	}
	q, err := quoteDay(store, f.Arg(0), days[0], cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderQuote(q))
	return subcommands.ExitSuccess
}
