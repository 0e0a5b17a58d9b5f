package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/quotes/renderer"
	"github.com/google/subcommands"
)

const shellHelp = `Commands:

- get <symbol> <date>
- range <symbol> <from> <to>
- day <symbol> <date>
- list
- help
- quit
`

// Shell answers queries read line by line, until "quit" or the end of the input.
//
// Unknown commands and blank lines are ignored.
type Shell struct {
	Store    renderer.Store
	Currency string
	Prompt   string              // printed before reading each line
	Render   func(string) string // renders markdown, nil prints it raw
}

// Run reads commands from in and writes their answers to out.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.Prompt != "" {
			fmt.Fprint(out, s.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" {
			return nil
		}
		md, err := s.exec(args[0], args[1:])
		switch {
		case err != nil:
			fmt.Fprintf(out, "error: %v\n", err)
		case md != "":
			fmt.Fprint(out, s.render(md))
		}
	}
}

func (s *Shell) render(md string) string {
	if s.Render == nil {
		return md
	}
	return s.Render(md)
}

// exec executes a single command and returns its markdown answer.
func (s *Shell) exec(name string, args []string) (string, error) {
	var q *renderer.Quote
	switch name {
	case "help":
		return shellHelp, nil
	case "list":
		return renderer.RenderSymbols(renderer.NewSymbolList(s.Store, s.Currency)), nil
	case "get", "day":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: %s <symbol> <date>", name)
		}
		days, err := parseDates(args[1])
		if err != nil {
			return "", err
		}
		if name == "get" {
			q, err = quoteOn(s.Store, args[0], days[0], s.Currency)
		} else {
			q, err = quoteDay(s.Store, args[0], days[0], s.Currency)
		}
		if err != nil {
			return "", err
		}
	case "range":
		if len(args) != 3 {
			return "", fmt.Errorf("usage: range <symbol> <from> <to>")
		}
		days, err := parseDates(args[1], args[2])
		if err != nil {
			return "", err
		}
		if q, err = quoteRange(s.Store, args[0], days[0], days[1], s.Currency); err != nil {
			return "", err
		}
	default:
		return "", nil
	}
	return renderer.RenderQuote(q), nil
}

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "query prices interactively" }
func (*shellCmd) Usage() string {
	return `quotes shell

  Loads the data folder, then reads commands from the standard input until
  "quit". Type "help" for the list of commands.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, store, status := LoadStore()
	if status != subcommands.ExitSuccess {
		return status
	}
	sh := &Shell{Store: store, Currency: cfg.Currency, Prompt: "> ", Render: renderMarkdown}
	if err := sh.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
