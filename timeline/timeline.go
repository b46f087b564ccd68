// Package timeline pages the capital movements of a portfolio into
// month-aligned windows for a chronological view.
package timeline

import (
	"errors"
	"fmt"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/date"
)

// ErrInvalidWidth is returned for a window width outside [MinWidth, MaxWidth].
var ErrInvalidWidth = errors.New("invalid timeline width")

// Window widths, in months.
const (
	MinWidth     = 1
	MaxWidth     = 12
	DefaultWidth = 3
)

// Events returns the transactions shown on the timeline, in chronological order.
func Events(txs []crowdfolio.Transaction) []crowdfolio.Transaction {
	var events []crowdfolio.Transaction
	for _, t := range txs {
		if t.Kind.IsTimeline() {
			events = append(events, t)
		}
	}
	return crowdfolio.Chronological(events)
}

// Window is one page of the timeline.
type Window struct {
	Range        date.Range               `json:"range"` // from the first day of its first month to the last day of its last month
	Transactions []crowdfolio.Transaction `json:"transactions"`
}

// Label returns the human name of the window, like "January – March 2024".
func (w Window) Label() string { return w.Range.Label() }

// Timeline is a paged view over events. Only windows holding at least one
// event exist. The zero value is an empty timeline.
type Timeline struct {
	events  []crowdfolio.Transaction
	width   int
	windows []Window
	current int
}

// New segments events into windows of width months and selects the most
// recent window.
func New(events []crowdfolio.Transaction, width int) (*Timeline, error) {
	t := &Timeline{events: crowdfolio.Chronological(events)}
	if err := t.Resize(width); err != nil {
		return nil, err
	}
	t.current = max(0, len(t.windows)-1)
	return t, nil
}

// Resize segments the events again with a new width. The current index is
// kept when still valid, clamped to the last window otherwise.
func (t *Timeline) Resize(width int) error {
	if width < MinWidth || width > MaxWidth {
		return fmt.Errorf("%w: %d months, want %d to %d", ErrInvalidWidth, width, MinWidth, MaxWidth)
	}
	t.width = width
	t.windows = segment(t.events, width)
	t.current = max(0, min(t.current, len(t.windows)-1))
	return nil
}

// segment splits sorted events in month-aligned windows, dropping the empty ones.
func segment(events []crowdfolio.Transaction, width int) []Window {
	span, ok := crowdfolio.DateSpan(events)
	if !ok {
		return nil
	}
	var windows []Window
	i := 0
	for r := range span.Months(width) {
		w := Window{Range: r}
		for i < len(events) && !events[i].Date.After(r.To) {
			w.Transactions = append(w.Transactions, events[i])
			i++
		}
		if len(w.Transactions) > 0 {
			windows = append(windows, w)
		}
	}
	return windows
}

// Clone returns an independent copy of t, the windows are shared read-only.
func (t *Timeline) Clone() *Timeline {
	c := *t
	return &c
}

// Width returns the width of the windows, in months.
func (t *Timeline) Width() int { return t.width }

// Len returns the number of windows.
func (t *Timeline) Len() int { return len(t.windows) }

// Windows returns all the windows, oldest first.
func (t *Timeline) Windows() []Window { return t.windows }

// Index returns the 0-based index of the current window.
func (t *Timeline) Index() int { return t.current }

// Current returns the current window, ok is false when the timeline is empty.
func (t *Timeline) Current() (w Window, ok bool) {
	if len(t.windows) == 0 {
		return Window{}, false
	}
	return t.windows[t.current], true
}

// Next moves to the following window and reports whether it moved.
func (t *Timeline) Next() bool {
	if t.current+1 >= len(t.windows) {
		return false
	}
	t.current++
	return true
}

// Prev moves to the previous window and reports whether it moved.
func (t *Timeline) Prev() bool {
	if t.current == 0 {
		return false
	}
	t.current--
	return true
}

// SizeAt returns the net portfolio size on a day, computed over all the
// given transactions and not only the visible window.
func SizeAt(all []crowdfolio.Transaction, on date.Date) crowdfolio.Money {
	return crowdfolio.PortfolioSizeAt(all, on)
}
