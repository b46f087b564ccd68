package crowdfolio

import (
	"math"

	"github.com/Rhymond/go-money"
)

// Sign classifies a displayed amount for styling.
type Sign string

const (
	SignZero     Sign = "zero"
	SignPositive Sign = "positive"
	SignNegative Sign = "negative"
)

// Formatted is a rendered amount and its sign class.
type Formatted struct {
	Text string `json:"text"`
	Sign Sign   `json:"sign"`
}

// Style describes how amounts are rendered.
type Style struct {
	Grapheme string // currency symbol
	Thousand string // thousands separator
	Decimal  string // decimal separator
	Template string // "1" is replaced by the number, "$" by the grapheme
}

// DefaultStyle renders amounts the Czech way: "1 500,5 Kč".
var DefaultStyle = Style{Grapheme: "Kč", Thousand: " ", Decimal: ",", Template: "1 $"}

// FormatAmount formats v with DefaultStyle.
func FormatAmount(v float64) Formatted { return DefaultStyle.Format(v) }

// Format renders v with an adaptive number of decimals.
//
// The value is first rounded to cents. It is printed without decimals when
// that is within 0.01 of an integer, with one decimal when within 0.01 of the
// nearest tenth, and with two otherwise. The comparisons are done on float64
// values, so that the output matches the reference dashboards digit for
// digit. The sign class is computed on the unrounded value.
func (s Style) Format(v float64) Formatted {
	v = finite(v)
	cents := math.Round(v*100) / 100
	places := decimalPlaces(cents)
	minor := int64(math.Round(cents * math.Pow10(places)))
	f := money.NewFormatter(places, s.Decimal, s.Thousand, s.Grapheme, s.Template)
	return Formatted{Text: f.Format(minor), Sign: classify(v)}
}

func decimalPlaces(cents float64) int {
	switch {
	case math.Abs(cents-math.Round(cents)) < 0.01:
		return 0
	case math.Abs(cents-math.Round(cents*10)/10) < 0.01:
		return 1
	default:
		return 2
	}
}

func classify(v float64) Sign {
	switch {
	case math.Abs(v) < 0.01:
		return SignZero
	case v > 0:
		return SignPositive
	default:
		return SignNegative
	}
}
