// Package renderer turns the dashboard aggregates into markdown reports,
// HTML pages and PNG charts.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/dashboard"
	"github.com/etnz/crowdfolio/date"
	"github.com/etnz/crowdfolio/table"
)

//go:embed templates/*.md
var templates embed.FS

// Renderer renders reports with a display style.
type Renderer struct {
	style crowdfolio.Style
}

// New returns a Renderer printing amounts with style.
func New(style crowdfolio.Style) *Renderer { return &Renderer{style: style} }

// OverviewReport is the data of the overview report.
type OverviewReport struct {
	crowdfolio.Overview
	Criteria    crowdfolio.Criteria      `json:"criteria"`
	Advanced    crowdfolio.AdvancedStats `json:"advanced"`
	TopProjects []crowdfolio.ProjectRow  `json:"topProjects"`
}

// Overview renders the headline statistics.
func (r *Renderer) Overview(o OverviewReport) string {
	partials := map[string]string{
		"overview_filter":      "overview_filter.md",
		"overview_capital":     "overview_capital.md",
		"overview_performance": "overview_performance.md",
		"overview_breakdown":   "overview_breakdown.md",
		"overview_habits":      "overview_habits.md",
	}
	return r.renderTemplate("overview", "overview.md", partials, o)
}

// Transactions renders a page of transactions.
func (r *Renderer) Transactions(p table.Page[crowdfolio.Transaction]) string {
	return r.renderTemplate("transactions", "transactions.md", pager, p)
}

// Projects renders a page of project rows.
func (r *Renderer) Projects(p table.Page[crowdfolio.ProjectRow]) string {
	return r.renderTemplate("projects", "projects.md", pager, p)
}

// Periods renders a page of period rows.
func (r *Renderer) Periods(p table.Page[crowdfolio.PeriodRow]) string {
	return r.renderTemplate("periods", "periods.md", pager, p)
}

// Timeline renders the current timeline window.
func (r *Renderer) Timeline(v dashboard.TimelineView) string {
	return r.renderTemplate("timeline", "timeline.md", nil, v)
}

var pager = map[string]string{"pager": "pager.md"}

// funcs are the helpers available to every template.
func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(m crowdfolio.Money) string { return r.style.Format(m.Float()).Text },
		"signed": func(m crowdfolio.Money) string {
			f := r.style.Format(m.Float())
			if f.Sign == crowdfolio.SignPositive {
				return "+" + f.Text
			}
			return f.Text
		},
		"percent":       func(p crowdfolio.Percent) string { return p.String() },
		"signedPercent": func(p crowdfolio.Percent) string { return p.SignedString() },
		"date": func(d date.Date) string {
			if d.IsZero() {
				return "-"
			}
			return d.String()
		},
		"days": func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"cell": func(s string) string {
			if s == "" {
				return "-"
			}
			return strings.ReplaceAll(s, "|", `\|`)
		},
		"position": func(v float64) string { return fmt.Sprintf("%.3f", v) },
		"mark": func(s table.SortState, field string) string {
			if s.Field != field {
				return ""
			}
			if s.Direction == table.Ascending {
				return " ▲"
			}
			return " ▼"
		},
		"inc": func(i int) int { return i + 1 },
		"sizeOf": func(sizes []crowdfolio.Money, i int) crowdfolio.Money {
			if i < len(sizes) {
				return sizes[i]
			}
			return crowdfolio.Money{}
		},
	}
}

// renderTemplate renders a main template that depends on several partials.
func (r *Renderer) renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(r.funcs()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
