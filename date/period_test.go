package date

import (
	"slices"
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	testCases := []struct {
		name string
		p    Period
		in   Date
		want Range
	}{
		{
			name: "A leap year month",
			p:    Monthly,
			in:   New(2024, time.February, 15),
			want: Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name: "A year",
			p:    Yearly,
			in:   New(2025, time.September, 8),
			want: Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Range(tc.in); got != tc.want {
				t.Errorf("Range() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Monthly Identifier", Monthly.Range(New(2025, time.September, 1)), "2025-09"},
		{"Yearly Identifier", Yearly.Range(New(2025, time.January, 1)), "2025"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRange_Label(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{Range{New(2024, time.March, 1), New(2024, time.March, 31)}, "March 2024"},
		{Range{New(2024, time.January, 1), New(2024, time.March, 31)}, "January – March 2024"},
		{Range{New(2023, time.November, 1), New(2024, time.January, 31)}, "November 2023 – January 2024"},
	}
	for _, tc := range testCases {
		if got := tc.in.Label(); got != tc.want {
			t.Errorf("Label() = %q, want %q", got, tc.want)
		}
	}
}

func TestRange_Months(t *testing.T) {
	r := Range{From: New(2023, time.November, 20), To: New(2024, time.April, 2)}
	got := slices.Collect(r.Months(3))
	want := []Range{
		{New(2023, time.November, 1), New(2024, time.January, 31)},
		{New(2024, time.February, 1), New(2024, time.April, 30)},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Months(3) = %v, want %v", got, want)
	}
	if got := slices.Collect(r.Months(0)); len(got) != 0 {
		t.Errorf("Months(0) = %v, want none", got)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Monthly", "monthly", Monthly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Month", "month", Monthly, false},
		{"Year", "Year", Yearly, false},
		{"Unknown", "weekly", Monthly, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
