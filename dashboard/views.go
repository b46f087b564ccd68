package dashboard

import (
	"fmt"
	"io"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/date"
	"github.com/etnz/crowdfolio/table"
	"github.com/etnz/crowdfolio/timeline"
)

// View names a tabular view.
type View string

const (
	ViewTransactions View = "transactions"
	ViewProjects     View = "projects"
	ViewPeriods      View = "periods"
)

// Views lists the tabular views.
var Views = []View{ViewTransactions, ViewProjects, ViewPeriods}

func money(get func(crowdfolio.ProjectRow) crowdfolio.Money) func(crowdfolio.ProjectRow) float64 {
	return func(r crowdfolio.ProjectRow) float64 { return get(r).Float() }
}

func periodMoney(get func(crowdfolio.PeriodRow) crowdfolio.Money) func(crowdfolio.PeriodRow) float64 {
	return func(r crowdfolio.PeriodRow) float64 { return get(r).Float() }
}

// TransactionColumns are the sortable fields of the transactions view.
var TransactionColumns = table.Columns[crowdfolio.Transaction]{
	table.Date("date", func(t crowdfolio.Transaction) date.Date { return t.Date }),
	table.Text("type", func(t crowdfolio.Transaction) string { return t.Label }),
	table.Text("detail", func(t crowdfolio.Transaction) string { return t.Detail }),
	table.Number("amount", func(t crowdfolio.Transaction) float64 { return t.Amount.Float() }),
	table.Text("project", func(t crowdfolio.Transaction) string { return t.Project }),
}

// ProjectColumns are the sortable fields of the projects view.
var ProjectColumns = table.Columns[crowdfolio.ProjectRow]{
	table.Text("project", func(r crowdfolio.ProjectRow) string { return r.Project }),
	table.Number("investment", money(func(r crowdfolio.ProjectRow) crowdfolio.Money { return r.Investment })),
	table.Number("returns", money(func(r crowdfolio.ProjectRow) crowdfolio.Money { return r.Returns })),
	table.Number("repaid", money(func(r crowdfolio.ProjectRow) crowdfolio.Money { return r.Repaid })),
	table.Number("sales", money(func(r crowdfolio.ProjectRow) crowdfolio.Money { return r.Sales })),
	table.Number("remaining", money(func(r crowdfolio.ProjectRow) crowdfolio.Money { return r.Remaining })),
	table.Number("yield", func(r crowdfolio.ProjectRow) float64 { return float64(r.Yield) }),
	table.Number("exposure", money(func(r crowdfolio.ProjectRow) crowdfolio.Money { return r.Exposure })),
	table.Number("transactions", func(r crowdfolio.ProjectRow) float64 { return float64(r.Transactions) }),
	table.Date("last", func(r crowdfolio.ProjectRow) date.Date { return r.Last }),
}

// PeriodColumns are the sortable fields of the periods view.
var PeriodColumns = table.Columns[crowdfolio.PeriodRow]{
	table.Date("period", func(r crowdfolio.PeriodRow) date.Date { return r.Range.From }),
	table.Number("deposits", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.Deposits })),
	table.Number("withdrawals", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.Withdrawals })),
	table.Number("invested", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.Invested })),
	table.Number("returned", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.ReturnedCapital })),
	table.Number("returns", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.Returns })),
	table.Number("rewards", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.MarketingRewards })),
	table.Number("fees", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.Fees })),
	table.Number("profit", periodMoney(func(r crowdfolio.PeriodRow) crowdfolio.Money { return r.Profit })),
	table.Number("change", func(r crowdfolio.PeriodRow) float64 { return float64(r.PercentChange) }),
}

// defaultSorts are the natural reading orders: latest transactions and
// periods first, largest investments first.
func defaultSorts() map[View]table.SortState {
	return map[View]table.SortState{
		ViewTransactions: {Field: "date", Direction: table.Descending},
		ViewProjects:     {Field: "investment", Direction: table.Descending},
		ViewPeriods:      {Field: "period", Direction: table.Descending},
	}
}

// Fields lists the sortable fields of a view.
func Fields(v View) ([]string, error) {
	switch v {
	case ViewTransactions:
		return TransactionColumns.Names(), nil
	case ViewProjects:
		return ProjectColumns.Names(), nil
	case ViewPeriods:
		return PeriodColumns.Names(), nil
	}
	return nil, fmt.Errorf("unknown view %q", v)
}

// toggle returns the sort state of v after sorting by field.
func toggle(v View, current table.SortState, field string) (table.SortState, error) {
	switch v {
	case ViewTransactions:
		col, err := TransactionColumns.Lookup(field)
		if err != nil {
			return current, err
		}
		return table.Toggle(current, col), nil
	case ViewProjects:
		col, err := ProjectColumns.Lookup(field)
		if err != nil {
			return current, err
		}
		return table.Toggle(current, col), nil
	case ViewPeriods:
		col, err := PeriodColumns.Lookup(field)
		if err != nil {
			return current, err
		}
		return table.Toggle(current, col), nil
	}
	return current, fmt.Errorf("unknown view %q", v)
}

// rows returns the number of rows of v.
func (st *state) rows(v View) int {
	switch v {
	case ViewProjects:
		return len(st.projects)
	case ViewPeriods:
		return len(st.periods)
	default:
		return len(st.filtered)
	}
}

// SortBy sorts a view by field. Sorting again by the same field reverses the
// direction, a new field starts with its default direction. The view goes
// back to its first page.
func (s *Session) SortBy(v View, field string) error {
	return s.apply("sort-by", false, func(st *state) error {
		next, err := toggle(v, st.sorts[v], field)
		if err != nil {
			return err
		}
		st.sorts[v] = next
		st.pages[v] = 1
		return nil
	})
}

// Sort returns the sort state of a view.
func (s *Session) Sort(v View) table.SortState { return s.st.sorts[v] }

// SetPage selects the page of a view, clamped to the existing pages.
func (s *Session) SetPage(v View, page int) error {
	return s.apply("set-page", false, func(st *state) error {
		if _, err := Fields(v); err != nil {
			return err
		}
		st.pages[v] = table.ClampPage(page, st.rows(v), s.pageSize)
		return nil
	})
}

// page returns the selected page of v, 1 when none was selected.
func (st *state) page(v View) int {
	if p, ok := st.pages[v]; ok {
		return p
	}
	return 1
}

// Transactions returns the current page of the filtered transactions.
func (s *Session) Transactions() (table.Page[crowdfolio.Transaction], error) {
	st := s.st
	return table.View(st.filtered, TransactionColumns, st.sorts[ViewTransactions], st.page(ViewTransactions), s.pageSize)
}

// Projects returns the current page of the project rows.
func (s *Session) Projects() (table.Page[crowdfolio.ProjectRow], error) {
	st := s.st
	return table.View(st.projects, ProjectColumns, st.sorts[ViewProjects], st.page(ViewProjects), s.pageSize)
}

// Periods returns the current page of the period rows.
func (s *Session) Periods() (table.Page[crowdfolio.PeriodRow], error) {
	st := s.st
	return table.View(st.periods, PeriodColumns, st.sorts[ViewPeriods], st.page(ViewPeriods), s.pageSize)
}

// Overview returns the statistics of the filtered transactions, as of the
// session clock.
func (s *Session) Overview() crowdfolio.Overview {
	return crowdfolio.NewOverview(s.st.filtered, s.clock())
}

// Advanced returns the investing habits of the filtered transactions.
func (s *Session) Advanced() crowdfolio.AdvancedStats {
	return crowdfolio.NewAdvancedStats(s.st.filtered)
}

// TopProjects returns the n most invested projects of the filtered set.
func (s *Session) TopProjects(n int) []crowdfolio.ProjectRow {
	return crowdfolio.TopProjects(s.st.projects, n)
}

// TimelineView is the visible window of the timeline.
type TimelineView struct {
	Window timeline.Window    `json:"window"`
	Label  string             `json:"label"`
	Index  int                `json:"index"`
	Len    int                `json:"len"`
	Width  int                `json:"width"`
	Points []timeline.Point   `json:"points"`
	Sizes  []crowdfolio.Money `json:"sizes"` // portfolio size on the day of each point
}

// Timeline returns the current timeline window; ok is false when the
// filtered set has no timeline event.
func (s *Session) Timeline() (v TimelineView, ok bool) {
	tl := s.st.timeline
	w, ok := tl.Current()
	if !ok {
		return TimelineView{Width: tl.Width()}, false
	}
	v = TimelineView{
		Window: w,
		Label:  w.Label(),
		Index:  tl.Index(),
		Len:    tl.Len(),
		Width:  tl.Width(),
		Points: timeline.Layout(w),
	}
	for _, p := range v.Points {
		v.Sizes = append(v.Sizes, timeline.SizeAt(s.st.filtered, p.Transaction.Date))
	}
	return v, true
}

// Export writes the filtered transactions in the platform export format.
func (s *Session) Export(w io.Writer) error {
	s.log.Info().Int("transactions", len(s.st.filtered)).Msg("export")
	return crowdfolio.Export(w, s.st.filtered)
}
