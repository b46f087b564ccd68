// Package cmd implements the cfo command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfolio/dashboard"
	"github.com/etnz/crowdfolio/date"
	"github.com/etnz/crowdfolio/internal/config"
	"github.com/etnz/crowdfolio/internal/logger"
	"github.com/etnz/crowdfolio/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&statsCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")
	c.Register(&projectsCmd{}, "reports")
	c.Register(&periodsCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&kindsCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultPath(), "Path to the configuration file (TOML)")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Overrides the configuration file.")

var cfg = config.NewDefaultConfig()

// Setup loads the configuration file and returns a context carrying the
// logger. main calls it once the global flags are parsed.
func Setup(ctx context.Context) (context.Context, error) {
	c, err := config.LoadConfig(*configFile)
	if err != nil {
		return ctx, err
	}
	cfg = c
	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	log := logger.New(level)
	log.Debug().Str("config", *configFile).Msg("configuration loaded")
	return logger.WithContext(ctx, log), nil
}

// newRenderer returns a renderer with the configured display style.
func newRenderer() *renderer.Renderer { return renderer.New(cfg.Style()) }

// openSession loads the export file into a new session and applies the
// filter flags. "-" reads the export from the standard input. A nil clock
// means today.
func openSession(ctx context.Context, file string, ff *filterFlags, clock func() date.Date) (*dashboard.Session, error) {
	log := logger.FromContext(ctx)
	tax, err := cfg.NewTaxonomy()
	if err != nil {
		return nil, err
	}
	opts := dashboard.Options{
		PageSize:      cfg.Table.PageSize,
		TimelineWidth: cfg.Timeline.Width,
		Taxonomy:      tax,
		Clock:         clock,
		Logger:        &log,
	}
	s, err := dashboard.New(opts)
	if err != nil {
		return nil, err
	}

	in := os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	if err := s.LoadCSV(in); err != nil {
		return nil, fmt.Errorf("loading %q: %w", file, err)
	}

	if ff != nil {
		criteria, err := ff.criteria(tax)
		if err != nil {
			return nil, err
		}
		if err := s.SetCriteria(criteria); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// fileArg returns the export file named on the command line.
func fileArg(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one export file, got %d arguments\n", f.NArg())
		return "", false
	}
	return f.Arg(0), true
}
