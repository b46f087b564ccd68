package crowdfolio

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/crowdfolio/date"
)

// ErrInvalidRange is returned when a date bound would end before it starts.
var ErrInvalidRange = errors.New("invalid date range")

// Criteria selects a subset of transactions. The zero value selects everything.
type Criteria struct {
	From    date.Date `json:"from"`    // inclusive, zero for no lower bound
	To      date.Date `json:"to"`      // inclusive, zero for no upper bound
	Types   []Kind    `json:"types"`   // empty for all kinds
	Project string    `json:"project"` // empty for all projects
}

// SetFrom sets the lower bound. It is rejected, leaving c unchanged, when
// it is after the upper bound.
func (c *Criteria) SetFrom(from date.Date) error {
	if !from.IsZero() && !c.To.IsZero() && from.After(c.To) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidRange, from, c.To)
	}
	c.From = from
	return nil
}

// SetTo sets the upper bound. It is rejected, leaving c unchanged, when
// it is before the lower bound.
func (c *Criteria) SetTo(to date.Date) error {
	if !to.IsZero() && !c.From.IsZero() && to.Before(c.From) {
		return fmt.Errorf("%w: to %s is before from %s", ErrInvalidRange, to, c.From)
	}
	c.To = to
	return nil
}

// IsZero reports whether c selects every transaction.
func (c Criteria) IsZero() bool {
	return c.From.IsZero() && c.To.IsZero() && len(c.Types) == 0 && c.Project == ""
}

// Match reports whether t satisfies every criterion.
func (c Criteria) Match(t Transaction) bool {
	if !c.From.IsZero() && t.Date.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && t.Date.After(c.To) {
		return false
	}
	if len(c.Types) > 0 && !slices.Contains(c.Types, t.Kind) {
		return false
	}
	return c.Project == "" || t.Project == c.Project
}

// Filter returns the transactions matching c, in their input order.
// txs is never modified.
func Filter(txs []Transaction, c Criteria) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Projects lists the distinct project names of txs the project criterion can take.
func (c Criteria) Projects(txs []Transaction) []string { return Projects(txs) }
