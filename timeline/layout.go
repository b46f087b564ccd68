package timeline

import (
	"github.com/etnz/crowdfolio"
)

// Same-day events are spread horizontally by offsetStep each, and never over
// more than maxSpread in total. Both are fractions of the window width.
const (
	offsetStep = 0.004
	maxSpread  = 0.03
)

// Point places one transaction of a window.
type Point struct {
	Transaction crowdfolio.Transaction `json:"transaction"`
	Position    float64                `json:"position"` // day of the transaction across the window, in [0, 1]
	Offset      float64                `json:"offset"`   // shift among same-day transactions
	Z           int                    `json:"z"`        // stacking order, strictly increasing
	SameDay     int                    `json:"sameDay"`  // transactions sharing the day, including this one
}

// X returns the final horizontal coordinate, kept in [0, 1].
func (p Point) X() float64 { return max(0, min(1, p.Position+p.Offset)) }

// Layout places the transactions of w. Transactions of the same day are
// spread around the day's position, centered, in their window order.
func Layout(w Window) []Point {
	points := make([]Point, len(w.Transactions))
	span := float64(max(1, w.Range.Days()-1))
	for i := 0; i < len(w.Transactions); {
		day := w.Transactions[i].Date
		j := i
		for j < len(w.Transactions) && w.Transactions[j].Date == day {
			j++
		}
		n := j - i
		spread := min(float64(n-1)*offsetStep, maxSpread)
		pos := float64(w.Range.From.DaysUntil(day)) / span
		for k := 0; k < n; k++ {
			offset := 0.0
			if n > 1 {
				offset = -spread/2 + spread*float64(k)/float64(n-1)
			}
			points[i+k] = Point{
				Transaction: w.Transactions[i+k],
				Position:    pos,
				Offset:      offset,
				Z:           i + k + 1,
				SameDay:     n,
			}
		}
		i = j
	}
	return points
}
