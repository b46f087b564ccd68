// Package date provides a calendar date with day granularity, the periods
// used to bucket transactions, and the lenient parsers used on platform
// exports.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Valid reports whether year, month and day designate a real calendar day,
// without normalization (31.2. is not valid).
func Valid(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	return New(year, month, day) == Date{year, month, day}
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns the midnight UTC instant of the day.
func (d Date) Time() time.Time { return d.time() }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on d being before, equal or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns the first day of the month i months after d's month.
//
// Unlike time.AddDate it never overflows into the following month.
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), 1) }

// DaysUntil returns the number of days from d to x, negative when x is before d.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / Day)
}

// MonthsUntil returns the number of calendar months from d's month to x's month.
func (d Date) MonthsUntil(x Date) int {
	return (x.y-d.y)*12 + int(x.m) - int(d.m)
}

// StartOf returns the date of begining of a given period
func (d Date) StartOf(period Period) Date {
	switch period {
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// EndOf returns the date of end of a given period
func (d Date) EndOf(period Period) Date {
	switch period {
	case Monthly:
		return New(d.y, d.m+1, 0) // last is next month on the day 0
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
