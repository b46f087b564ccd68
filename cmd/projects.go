package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfolio/dashboard"
	"github.com/google/subcommands"
)

type projectsCmd struct {
	filters filterFlags
	table   tableFlags
	output  outputFlags
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list the per-project aggregates" }
func (*projectsCmd) Usage() string {
	return `cfo projects [-sort <field>] [-reverse] [-page <n>] [filters] <export.csv>

  Lists investment, returns, repayments, remaining principal, yield and
  exposure of every project, largest investment first by default.
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	c.table.SetFlags(f, dashboard.ViewProjects)
	c.output.SetFlags(f)
}

func (c *projectsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx, file, &c.filters, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.table.apply(s, dashboard.ViewProjects); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	page, err := s.Projects()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(&c.output, "Projects", page, func() string {
		return newRenderer().Projects(page)
	})
}
