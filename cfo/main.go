package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/crowdfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	cmd.Completion(flag.CommandLine, commander).Complete(path.Base(os.Args[0]))

	flag.Parse()
	ctx, err := cmd.Setup(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	if name := flag.Arg(0); name != "" && !cmd.Known(commander, name) {
		if found, code := cmd.RunExtension(ctx, name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}
