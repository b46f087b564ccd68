package crowdfolio

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the platform's single currency.
type Money struct {
	value decimal.Decimal
}

// M creates Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// parseMoney parses a cleaned decimal string ("-1500.25").
func parseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int              { return m.value.Cmp(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                   { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) DivInt(n int) Money           { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }
func (m Money) Round(places int32) Money     { return Money{value: m.value.Round(places)} }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Float() float64               { return m.value.InexactFloat64() }

// Cents returns m rounded to cents, the precision used by every sign test.
func (m Money) Cents() Money { return m.Round(2) }

// Ratio returns m / n as a Percent, 0 when n is zero.
func (m Money) Ratio(n Money) Percent {
	if n.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// String returns the display form of the amount (see FormatAmount).
func (m Money) String() string { return FormatAmount(m.Float()).Text }

// Display formats the amount and classifies its sign.
func (m Money) Display() Formatted { return FormatAmount(m.Float()) }

// MarshalJSON writes the amount as a plain JSON number rounded to cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.Round(2).String()), nil
}

// sum adds all amounts.
func sum(values ...Money) Money {
	var total Money
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
