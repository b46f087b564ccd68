package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/dashboard"
	"github.com/etnz/crowdfolio/date"
)

// filterFlags are the transaction filter flags shared by the reports.
type filterFlags struct {
	from    string
	to      string
	types   string
	project string
}

func (ff *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&ff.from, "from", "", "Keep transactions on or after this date (YYYY-MM-DD or D. M. YYYY)")
	f.StringVar(&ff.to, "to", "", "Keep transactions on or before this date (YYYY-MM-DD or D. M. YYYY)")
	f.StringVar(&ff.types, "types", "", "Comma separated transaction types to keep, by name or label. See 'cfo kinds'.")
	f.StringVar(&ff.project, "project", "", "Keep the transactions of this project only")
}

// criteria parses the flags into filter criteria.
func (ff *filterFlags) criteria(tax *crowdfolio.Taxonomy) (crowdfolio.Criteria, error) {
	var c crowdfolio.Criteria
	if ff.from != "" {
		d, err := date.ParseLoose(ff.from)
		if err != nil {
			return c, fmt.Errorf("invalid -from: %w", err)
		}
		c.From = d
	}
	if ff.to != "" {
		d, err := date.ParseLoose(ff.to)
		if err != nil {
			return c, fmt.Errorf("invalid -to: %w", err)
		}
		if err := c.SetTo(d); err != nil {
			return c, err
		}
	}
	for _, name := range strings.Split(ff.types, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kind, ok := tax.ParseKind(name)
		if !ok {
			return c, fmt.Errorf("invalid -types: unknown type %q", name)
		}
		c.Types = append(c.Types, kind)
	}
	c.Project = strings.TrimSpace(ff.project)
	return c, nil
}

// tableFlags select the sort order and the page of a tabular view.
type tableFlags struct {
	sort    string
	reverse bool
	page    int
}

func (tf *tableFlags) SetFlags(f *flag.FlagSet, v dashboard.View) {
	fields, _ := dashboard.Fields(v)
	f.StringVar(&tf.sort, "sort", "", "Sort by this field: "+strings.Join(fields, ", "))
	f.BoolVar(&tf.reverse, "reverse", false, "Reverse the sort direction")
	f.IntVar(&tf.page, "page", 1, "Page to show")
}

// apply selects the sort and the page of v in the session.
func (tf *tableFlags) apply(s *dashboard.Session, v dashboard.View) error {
	if tf.sort != "" && tf.sort != s.Sort(v).Field {
		if err := s.SortBy(v, tf.sort); err != nil {
			return err
		}
	}
	if tf.reverse {
		if err := s.SortBy(v, s.Sort(v).Field); err != nil {
			return err
		}
	}
	return s.SetPage(v, tf.page)
}

// outputFlags select how a report is written.
type outputFlags struct {
	json  bool
	query string
	html  string
}

func (of *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&of.json, "json", false, "Print the report data as JSON")
	f.StringVar(&of.query, "q", "", "JSONPath query on the report data, implies -json (e.g. $.netPortfolioSize)")
	f.StringVar(&of.html, "html", "", "Also write the report as an HTML page to this file")
}
