package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/dashboard"
	"github.com/etnz/crowdfolio/date"
	"github.com/etnz/crowdfolio/internal/logger"
	"github.com/etnz/crowdfolio/renderer"
	"github.com/google/subcommands"
)

type reportTask struct {
	Period date.Range
	Report string
}

type publishCmd struct {
	filters        filterFlags
	outputDir      string
	frontMatterTpl string
	html           bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the overview of every month and year" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>] [-html] [filters] <export.csv>

  Generates the overview of the whole portfolio, its growth chart, and the
  overview of every month and every year spanned by the transactions, and
  saves them to a structured directory tree.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
	f.BoolVar(&c.html, "html", false, "Also write every report as an HTML page")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := fileArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	// asOf follows the period being published.
	asOf := date.Today()
	s, err := openSession(ctx, file, &c.filters, func() date.Date { return asOf })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.publish(ctx, s, frontMatterTpl, &asOf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// publish writes every report of s under the output directory. asOf is
// moved to the end of each published period.
func (c *publishCmd) publish(ctx context.Context, s *dashboard.Session, frontMatterTpl *template.Template, asOf *date.Date) error {
	log := logger.FromContext(ctx)
	r := newRenderer()

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	span, ok := crowdfolio.DateSpan(s.Filtered())
	if !ok {
		fmt.Println("No transactions, nothing to publish.")
		return nil
	}

	*asOf = span.To
	if err := c.write("index.md", "Portfolio Overview", r.Overview(overviewReport(s, 5))); err != nil {
		return err
	}
	if png, err := r.GrowthChart(renderer.Growth(s.Filtered())); err == nil {
		if err := os.WriteFile(filepath.Join(c.outputDir, "growth.png"), png, 0644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	} else {
		log.Info().Err(err).Msg("growth chart skipped")
	}

	base := s.Criteria()
	for _, period := range generatePeriods(span) {
		task := reportTask{Period: period, Report: "overview"}

		criteria := base
		criteria.From, criteria.To = period.From, period.To
		if !base.From.IsZero() && base.From.After(period.From) {
			criteria.From = base.From
		}
		if !base.To.IsZero() && base.To.Before(period.To) {
			criteria.To = base.To
		}
		if err := s.SetCriteria(criteria); err != nil {
			return err
		}
		*asOf = period.To

		md := r.Overview(overviewReport(s, 5))
		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				return fmt.Errorf("failed to render front matter for %s report %s: %w", task.Report, period.Identifier(), err)
			}
			md = fm + "\n" + md
		}

		p, _ := period.Period()
		filePath := path.Join(task.Report, p.String(), period.Identifier()+".md")
		if err := c.write(filePath, period.Label(), md); err != nil {
			return err
		}
		log.Info().Str("report", task.Report).Str("period", period.Identifier()).Msg("report generated")
	}
	return s.SetCriteria(base)
}

// write saves a markdown report, and its HTML page when asked.
func (c *publishCmd) write(filePath, title, md string) error {
	fullPath := filepath.Join(c.outputDir, filePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory for file %s: %w", filePath, err)
	}
	if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	if c.html {
		htmlPath := fullPath[:len(fullPath)-len(filepath.Ext(fullPath))] + ".html"
		if err := writeHTML(htmlPath, title, md); err != nil {
			return fmt.Errorf("failed to write file %s: %w", htmlPath, err)
		}
	}
	return nil
}

// overviewReport gathers the overview of the current selection of s, with
// its top projects.
func overviewReport(s *dashboard.Session, top int) renderer.OverviewReport {
	return renderer.OverviewReport{
		Overview:    s.Overview(),
		Criteria:    s.Criteria(),
		Advanced:    s.Advanced(),
		TopProjects: s.TopProjects(top),
	}
}

// generatePeriods returns every month, then every year, overlapping span.
func generatePeriods(span date.Range) []date.Range {
	var ranges []date.Range
	for r := range span.Months(1) {
		ranges = append(ranges, r)
	}
	for d := span.From.StartOf(date.Yearly); !d.After(span.To); d = d.AddMonth(12) {
		ranges = append(ranges, date.Yearly.Range(d))
	}
	return ranges
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
