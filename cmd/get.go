package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quotes/renderer"
	"github.com/google/subcommands"
)

type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "display the prices of a symbol on a day" }
func (*getCmd) Usage() string {
	return `quotes get <symbol> <date>

  Displays the opening, closing, highest and lowest prices, and the volume of
  the symbol on that day. Dates are written YYYY-MM-DD.
`
}

func (*getCmd) SetFlags(f *flag.FlagSet) {}

func (*getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: get requires a symbol and a date")
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
	q, err := quoteOn(store, f.Arg(0), days[0], cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderQuote(q))
	return subcommands.ExitSuccess
}
