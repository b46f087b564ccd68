package crowdfolio

import (
	"slices"

	"github.com/etnz/crowdfolio/date"
)

// Transaction is one normalized row of the platform export. It is a value
// type and is never modified after normalization.
type Transaction struct {
	Date        date.Date `json:"date"`
	Timezone    string    `json:"timezone,omitempty"` // carried through, not interpreted
	Kind        Kind      `json:"kind"`
	Label       string    `json:"label"` // type label as found in the export
	Detail      string    `json:"detail,omitempty"`
	Amount      Money     `json:"amount"` // signed as exported
	Project     string    `json:"project,omitempty"`
	ProjectURL  string    `json:"projectUrl,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
}

// Abs returns the unsigned amount, the one used by the accounting formulas.
func (t Transaction) Abs() Money { return t.Amount.Abs() }

// HasProject reports whether the transaction refers to a project.
func (t Transaction) HasProject() bool { return t.Project != "" }

// Chronological returns a copy of txs stably sorted by date.
func Chronological(txs []Transaction) []Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
	return sorted
}

// DateSpan returns the earliest and latest dates of txs; ok is false for an empty slice.
func DateSpan(txs []Transaction) (r date.Range, ok bool) {
	if len(txs) == 0 {
		return date.Range{}, false
	}
	r = date.Range{From: txs[0].Date, To: txs[0].Date}
	for _, t := range txs[1:] {
		if t.Date.Before(r.From) {
			r.From = t.Date
		}
		if t.Date.After(r.To) {
			r.To = t.Date
		}
	}
	return r, true
}

// Projects returns the distinct project names, sorted.
func Projects(txs []Transaction) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range txs {
		if t.HasProject() && !seen[t.Project] {
			seen[t.Project] = true
			names = append(names, t.Project)
		}
	}
	slices.Sort(names)
	return names
}
