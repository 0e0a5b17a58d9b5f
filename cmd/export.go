package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quotes/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	db string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "copy every series into a SQLite database" }
func (*exportCmd) Usage() string {
	return `quotes export [-db <file>]

  Loads the data folder and writes every series into the "bars" table of a
  SQLite database, one row per symbol and day. Prices are stored in
  hundredths. Existing rows of an exported symbol are replaced.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.db, "db", "", "SQLite database file, defaults to the configured database.sqlite_path")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, store, status := LoadStore()
	if status != subcommands.ExitSuccess {
		return status
	}
	path := c.db
	if path == "" {
		path = cfg.Database.SQLitePath
	}

	db, err := export.Open(path, NewLogger(cfg.Log.Level, cfg.Log.Pretty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	n, err := db.WriteAll(ctx, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Exported %d bars of %d series to %s\n", n, len(store.Symbols()), path)
	return subcommands.ExitSuccess
}
