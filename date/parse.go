package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Patterns tried in order by ParseLoose. Only the leading date is matched,
// a trailing time of day is ignored.
var (
	dottedRE = regexp.MustCompile(`^(\d{1,2})\.\s*(\d{1,2})\.\s*(\d{4})\b`)
	isoRE    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashRE  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

// fallbackLayouts are tried when no known pattern matches.
var fallbackLayouts = []string{
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"20060102",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
}

// ParseLoose parses the date formats found in platform exports.
//
// It tries, in order, D.M.YYYY (spaces after the dots are allowed, so the
// Czech locale form "1. 2. 2024" is accepted), YYYY-M-D, M/D/YYYY and then a
// list of common layouts. Components out of range (31.2.2024) are rejected
// rather than normalized.
func ParseLoose(str string) (Date, error) {
	s := strings.TrimSpace(str)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}

	if m := dottedRE.FindStringSubmatch(s); m != nil {
		return fromParts(str, m[3], m[2], m[1])
	}
	if m := isoRE.FindStringSubmatch(s); m != nil {
		return fromParts(str, m[1], m[2], m[3])
	}
	if m := slashRE.FindStringSubmatch(s); m != nil {
		return fromParts(str, m[3], m[1], m[2])
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return New(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", str)
}

// fromParts builds a date from decimal year, month and day strings.
func fromParts(src, ys, ms, ds string) (Date, error) {
	y, _ := strconv.Atoi(ys) // the regexps only capture digits
	m, _ := strconv.Atoi(ms)
	d, _ := strconv.Atoi(ds)
	if !Valid(y, time.Month(m), d) {
		return Date{}, fmt.Errorf("invalid calendar date %q", src)
	}
	return New(y, time.Month(m), d), nil
}

// FormatCzech formats d the way the Czech locale prints short dates: "1. 2. 2024".
func FormatCzech(d Date) string {
	return fmt.Sprintf("%d. %d. %d", d.Day(), d.Month(), d.Year())
}
