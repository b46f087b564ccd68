package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfolio/date"
	"github.com/google/subcommands"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	filters filterFlags
	output  outputFlags
	asOf    string
	top     int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the portfolio overview" }
func (*statsCmd) Usage() string {
	return `cfo stats [-asof <date>] [-from <date>] [-to <date>] [-types <types>] [-project <name>] <export.csv>

  Displays the headline statistics of the filtered transactions: capital,
  profits, time-weighted return, breakdowns and investing habits.

Usage Examples:
# Net portfolio size only.
$ cfo stats -q '$.netPortfolioSize' export.csv

`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	c.output.SetFlags(f)
	f.StringVar(&c.asOf, "asof", date.Today().String(), "Reference day of the 12 months return and of the current month payout")
	f.IntVar(&c.top, "top", 5, "Number of top projects to show")
}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	asOf, err := date.ParseLoose(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx, file, &c.filters, func() date.Date { return asOf })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := overviewReport(s, c.top)
	return emit(&c.output, "Portfolio Overview", report, func() string {
		return newRenderer().Overview(report)
	})
}
