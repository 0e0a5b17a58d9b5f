// Command quotes converts legacy daily price files and queries price series.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/quotes/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.ImportantFlag("dir")
	commander.ImportantFlag("config")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
