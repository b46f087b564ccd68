package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, both ends included.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int { return r.From.DaysUntil(r.To) + 1 }

// Months returns an iterator over consecutive month-aligned ranges of
// 'width' months covering r. The first range starts on the first day of
// r.From's month, the last one ends on the last day of its last month.
func (r Range) Months(width int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if width < 1 {
			return
		}
		for start := r.From.StartOf(Monthly); !start.After(r.To); start = start.AddMonth(width) {
			window := Range{From: start, To: start.AddMonth(width).Add(-1)}
			if !yield(window) {
				return
			}
		}
	}
}

// Period returns the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Monthly, false
	}
}

// Identifier compute a unique identifier for the Range.
// If the period is defined, use a short sortable key ("2025-09", "2025").
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Monthly:
		return r.From.Format("2006-01")
	default:
		return r.From.Format("2006")
	}
}

// Label returns a human name for a month-aligned range: "March 2024",
// "January – March 2024" or "November 2023 – January 2024".
func (r Range) Label() string {
	from, to := r.From, r.To
	switch {
	case from.Year() == to.Year() && from.Month() == to.Month():
		return from.Format("January 2006")
	case from.Year() == to.Year():
		return fmt.Sprintf("%s – %s", from.Format("January"), to.Format("January 2006"))
	default:
		return fmt.Sprintf("%s – %s", from.Format("January 2006"), to.Format("January 2006"))
	}
}
