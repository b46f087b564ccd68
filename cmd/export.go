package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	filters    filterFlags
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the filtered transactions as CSV" }
func (*exportCmd) Usage() string {
	return `cfo export [-o <file>] [filters] <export.csv>

  Writes the filtered transactions back in the platform export format, in
  their original order. The input may use any of the supported date formats
  and delimiters, the output is always comma separated with D. M. YYYY dates.

Usage Examples:
# Keep only the transactions of 2024.
$ cfo export -from 2024-01-01 -to 2024-12-31 -o 2024.csv export.csv

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to the standard output.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx, file, &c.filters, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.outputFile != "" {
		out, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := s.Export(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Successfully exported %d transactions to %s\n", len(s.Filtered()), c.outputFile)
	}
	return subcommands.ExitSuccess
}
