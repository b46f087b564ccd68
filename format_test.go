package crowdfolio

import (
	"math"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		in   float64
		want Formatted
	}{
		{in: 1500.0, want: Formatted{Text: "1 500 Kč", Sign: SignPositive}},
		{in: 0.004, want: Formatted{Text: "0 Kč", Sign: SignZero}},
		{in: -0.004, want: Formatted{Text: "0 Kč", Sign: SignZero}},
		{in: 1500.5, want: Formatted{Text: "1 500,5 Kč", Sign: SignPositive}},
		{in: 1234.56, want: Formatted{Text: "1 234,56 Kč", Sign: SignPositive}},
		{in: 2.999, want: Formatted{Text: "3 Kč", Sign: SignPositive}},
		{in: -42, want: Formatted{Text: "-42 Kč", Sign: SignNegative}},
		{in: 1234567.25, want: Formatted{Text: "1 234 567,25 Kč", Sign: SignPositive}},
		{in: math.NaN(), want: Formatted{Text: "0 Kč", Sign: SignZero}},
	}
	for _, tc := range testCases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestStyle_Format(t *testing.T) {
	euro := Style{Grapheme: "€", Thousand: ",", Decimal: ".", Template: "$1"}
	if got := euro.Format(1234.5).Text; got != "€1,234.5" {
		t.Errorf("Format() = %q, want €1,234.5", got)
	}
}

func TestMoney_Display(t *testing.T) {
	got := CZK(-1000.5).Display()
	if got.Text != "-1 000,5 Kč" || got.Sign != SignNegative {
		t.Errorf("Display() = %+v, want -1 000,5 Kč negative", got)
	}
}
