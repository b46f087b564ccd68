package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type timelineCmd struct {
	filters filterFlags
	output  outputFlags
	width   int
	back    int
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "show the capital movements of a timeline window" }
func (*timelineCmd) Usage() string {
	return `cfo timeline [-width <months>] [-back <n>] [filters] <export.csv>

  Shows the investments, sales, deposits and withdrawals of one window of
  the timeline, with the portfolio size on each day. The latest window is
  shown by default, -back moves to older ones.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	c.output.SetFlags(f)
	f.IntVar(&c.width, "width", 0, "Window width in months, 1 to 12. Defaults to the configuration.")
	f.IntVar(&c.back, "back", 0, "Number of windows to go back from the latest")
}

func (c *timelineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx, file, &c.filters, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.width != 0 {
		if err := s.SetTimelineWidth(c.width); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	for i := 0; i < c.back; i++ {
		if !s.TimelinePrev() {
			break
		}
	}

	v, _ := s.Timeline()
	return emit(&c.output, "Timeline", v, func() string {
		return newRenderer().Timeline(v)
	})
}
