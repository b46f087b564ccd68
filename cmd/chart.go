package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfolio/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	filters    filterFlags
	outputFile string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the portfolio growth as a PNG chart" }
func (*chartCmd) Usage() string {
	return `cfo chart [-o <file>] [filters] <export.csv>

  Draws the net portfolio size and the cumulated profits at the end of every
  month.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.outputFile, "o", "growth.png", "Output PNG file")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx, file, &c.filters, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	png, err := newRenderer().GrowthChart(renderer.Growth(s.Filtered()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.outputFile, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
