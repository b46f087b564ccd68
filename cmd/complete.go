package cmd

import (
	"flag"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/dashboard"
	"github.com/etnz/crowdfolio/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion, from the
// top level flags and the registered subcommands.
func Completion(top *flag.FlagSet, cdr *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(top, ""),
	}
	cdr.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: predictFlags(f, c.Name()),
			Args:  predictArgs(c.Name()),
		}
	})
	return root
}

func predictFlags(f *flag.FlagSet, command string) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		flags[fl.Name] = predictFlag(fl, command)
	})
	return flags
}

func predictFlag(fl *flag.Flag, command string) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "config":
		return predict.Files("*.toml")
	case "log-level":
		return predict.Set{"debug", "info", "warn", "error"}
	case "types":
		var kinds predict.Set
		for _, k := range crowdfolio.Kinds {
			kinds = append(kinds, string(k))
		}
		return kinds
	case "period":
		return predict.Set{"monthly", "yearly"}
	case "sort":
		fields, _ := dashboard.Fields(dashboard.View(command))
		return predict.Set(fields)
	case "html":
		return predict.Files("*.html")
	case "o", "frontmatter":
		return predict.Files("*")
	}
	return predict.Something
}

func predictArgs(command string) complete.Predictor {
	switch command {
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(topics)
	case "kinds", "help", "flags", "commands":
		return predict.Nothing
	}
	return predict.Files("*.csv")
}
