package crowdfolio

import (
	"cmp"
	"slices"

	"github.com/etnz/crowdfolio/date"
)

// ProjectRow summarizes the activity on one project.
type ProjectRow struct {
	Project      string    `json:"project"`
	URL          string    `json:"url,omitempty"`
	Type         string    `json:"type,omitempty"`
	Investment   Money     `json:"investment"` // capital in, minus contract withdrawals
	Returns      Money     `json:"returns"`
	Repaid       Money     `json:"repaid"`
	Sales        Money     `json:"sales"`
	Remaining    Money     `json:"remainingToRepay"`
	Yield        Percent   `json:"currentYield"`
	Fees         Money     `json:"fees"`
	Exposure     Money     `json:"exposure"`
	Active       bool      `json:"active"`
	Transactions int       `json:"transactions"`
	First        date.Date `json:"first"`
	Last         date.Date `json:"last"`
}

// isEmpty reports rows without any investment, return, repayment or sale.
func (r ProjectRow) isEmpty() bool {
	return r.Investment.IsZero() && r.Returns.IsZero() && r.Repaid.IsZero() && r.Sales.IsZero()
}

// ProjectRows returns one row per project, sorted by project name.
// Transactions without project are ignored, and so are projects whose
// investment, returns, repayments and sales are all zero.
func ProjectRows(txs []Transaction) []ProjectRow {
	byProject := make(map[string][]Transaction)
	for _, t := range txs {
		if t.HasProject() {
			byProject[t.Project] = append(byProject[t.Project], t)
		}
	}
	exposure := Exposure(txs)

	rows := make([]ProjectRow, 0, len(byProject))
	for name, ptxs := range byProject {
		totals := NewTotals(ptxs)
		row := ProjectRow{
			Project:      name,
			Investment:   totals.CapitalIn().Sub(totals[KindWithdrawalRequest]),
			Returns:      totals.matching(Kind.IsProfit),
			Repaid:       totals.matching(Kind.IsRepayment),
			Sales:        totals[KindSale],
			Fees:         totals.Fees(),
			Exposure:     exposure[name],
			Active:       exposure[name].Cents().IsPositive(),
			Transactions: len(ptxs),
		}
		if row.isEmpty() {
			continue
		}
		row.Remaining = row.Investment.Sub(row.Repaid).Sub(row.Sales)
		if row.Investment.IsPositive() {
			row.Yield = row.Returns.Ratio(row.Investment)
		}
		for _, t := range ptxs {
			if row.First.IsZero() || t.Date.Before(row.First) {
				row.First = t.Date
			}
			if t.Date.After(row.Last) {
				row.Last = t.Date
			}
			if row.URL == "" {
				row.URL = t.ProjectURL
			}
			if row.Type == "" {
				row.Type = t.ProjectType
			}
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b ProjectRow) int { return cmp.Compare(a.Project, b.Project) })
	return rows
}

// TopProjects returns the n rows with the largest investment, largest first.
func TopProjects(rows []ProjectRow, n int) []ProjectRow {
	top := slices.Clone(rows)
	slices.SortStableFunc(top, func(a, b ProjectRow) int {
		if c := b.Investment.Cmp(a.Investment); c != 0 {
			return c
		}
		return cmp.Compare(a.Project, b.Project)
	})
	if n >= 0 && n < len(top) {
		top = top[:n]
	}
	return top
}
