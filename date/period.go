package date

import (
	"fmt"
	"strings"
)

// Period is a calendar bucket used to group transactions.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Name returns the singular noun for the period (e.g., "month").
func (p Period) Name() string {
	switch p {
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Range returns the Range of the period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "monthly", "month", "m":
		return Monthly, nil
	case "yearly", "year", "y":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", p)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
