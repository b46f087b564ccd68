package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/crowdfolio"
	"github.com/google/subcommands"
)

type kindsCmd struct{}

func (*kindsCmd) Name() string     { return "kinds" }
func (*kindsCmd) Synopsis() string { return "list the transaction types and their classes" }
func (*kindsCmd) Usage() string {
	return `cfo kinds

  Lists the transaction types, their platform label and the classes they
  belong to. Type names and labels are accepted by the -types filter.
`
}

func (c *kindsCmd) SetFlags(f *flag.FlagSet) {}

func (c *kindsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := cfg.NewTaxonomy(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(kindsMarkdown(cfg.Taxonomy.Aliases))
	return subcommands.ExitSuccess
}

// kindsMarkdown renders the kinds table, with the configured aliases.
func kindsMarkdown(aliases map[string]string) string {
	var b strings.Builder
	b.WriteString("# Transaction Types\n\n")
	b.WriteString("| Type | Label | Classes | Aliases |\n|:---|:---|:---|:---|\n")
	for _, k := range crowdfolio.Kinds {
		var extra []string
		for label, name := range aliases {
			if name == string(k) || name == k.Label() {
				extra = append(extra, label)
			}
		}
		slices.Sort(extra)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", k, k.Label(), strings.Join(classes(k), ", "), strings.Join(extra, ", "))
	}
	return b.String()
}

func classes(k crowdfolio.Kind) []string {
	var out []string
	for _, c := range []struct {
		name string
		is   bool
	}{
		{"capital in", k.IsCapitalIn()},
		{"capital out", k.IsCapitalOut()},
		{"profit", k.IsProfit()},
		{"fee", k.IsProfitFee()},
		{"reward", k.IsReward()},
		{"repayment", k.IsRepayment()},
		{"timeline", k.IsTimeline()},
	} {
		if c.is {
			out = append(out, c.name)
		}
	}
	return out
}
