package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/quotes"
	"github.com/google/subcommands"
)

type inspectCmd struct{}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "evaluate a JSONPath expression on the document of a symbol" }
func (*inspectCmd) Usage() string {
	return `quotes inspect <symbol> <jsonpath>

  Evaluates the JSONPath expression on the JSON document of the symbol, whatever
  the configured document format, and prints the result as JSON.

Usage Examples:
# Closing price on a given day.
$ quotes inspect AAPL '$.dates["2020-01-03"].end'

# Every volume of the series.
$ quotes inspect AAPL '$.dates[*].volume'
`
}

func (*inspectCmd) SetFlags(f *flag.FlagSet) {}

func (*inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: inspect requires a symbol and a JSONPath expression")
		return subcommands.ExitUsageError
	}
	_, store, status := LoadStore()
	if status != subcommands.ExitSuccess {
		return status
	}
	s, err := series(store, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	val, err := inspect(s, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(1), err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// inspect evaluates the JSONPath expression on the JSON document of s.
func inspect(s *quotes.Series, expr string) (any, error) {
	codec, err := quotes.NewCodec(quotes.JSON)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := codec.Encode(&buf, s); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, err
	}
	return jsonpath.Get(expr, doc)
}
