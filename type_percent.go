package crowdfolio

import (
	"fmt"
	"math"
)

// Percent is a ratio expressed in percents (5 means 5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f %%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f %%", float64(p))
	if res == "+0.00 %" || res == "-0.00 %" {
		return "-"
	}
	return res
}

// finite replaces NaN and infinities by 0, so that no aggregate ever leaks them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
