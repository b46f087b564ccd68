package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfolio/dashboard"
	"github.com/etnz/crowdfolio/date"
	"github.com/google/subcommands"
)

type periodsCmd struct {
	filters filterFlags
	table   tableFlags
	output  outputFlags
	period  string
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "list the monthly or yearly aggregates" }
func (*periodsCmd) Usage() string {
	return `cfo periods [-period monthly|yearly] [-sort <field>] [-reverse] [-page <n>] [filters] <export.csv>

  Lists deposits, investments, returns, fees and profit per month or per
  year, with the profit change from one period to the next.
`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	c.table.SetFlags(f, dashboard.ViewPeriods)
	c.output.SetFlags(f)
	f.StringVar(&c.period, "period", "monthly", "Period of the rows: monthly or yearly")
}

func (c *periodsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx, file, &c.filters, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.SetPeriodMode(period); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.table.apply(s, dashboard.ViewPeriods); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	page, err := s.Periods()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(&c.output, "Periods", page, func() string {
		return newRenderer().Periods(page)
	})
}
