package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfolio/dashboard"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	filters filterFlags
	table   tableFlags
	output  outputFlags
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the transactions" }
func (*transactionsCmd) Usage() string {
	return `cfo transactions [-sort <field>] [-reverse] [-page <n>] [filters] <export.csv>

  Lists the filtered transactions one page at a time, latest first by default.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	c.table.SetFlags(f, dashboard.ViewTransactions)
	c.output.SetFlags(f)
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx, file, &c.filters, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.table.apply(s, dashboard.ViewTransactions); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	page, err := s.Transactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(&c.output, "Transactions", page, func() string {
		return newRenderer().Transactions(page)
	})
}
