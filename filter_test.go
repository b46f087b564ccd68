package crowdfolio

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/crowdfolio/date"
)

func TestFilter(t *testing.T) {
	txs := []Transaction{
		tx("2024-03-01", KindReturn, 10, "Alpha"),
		tx("2024-01-01", KindInvestment, 100, "Alpha"),
		tx("2024-02-01", KindInvestment, 100, "Beta"),
		tx("2024-04-01", KindDeposit, 100, ""),
	}
	testCases := []struct {
		name     string
		criteria Criteria
		want     []int // indexes in txs
	}{
		{name: "zero", criteria: Criteria{}, want: []int{0, 1, 2, 3}},
		{name: "from", criteria: Criteria{From: date.MustParse("2024-02-01")}, want: []int{0, 2, 3}},
		{name: "to", criteria: Criteria{To: date.MustParse("2024-02-01")}, want: []int{1, 2}},
		{name: "types", criteria: Criteria{Types: []Kind{KindInvestment, KindDeposit}}, want: []int{1, 2, 3}},
		{name: "project", criteria: Criteria{Project: "Alpha"}, want: []int{0, 1}},
		{
			name: "all",
			criteria: Criteria{
				From:    date.MustParse("2024-01-01"),
				To:      date.MustParse("2024-03-31"),
				Types:   []Kind{KindInvestment},
				Project: "Alpha",
			},
			want: []int{1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(txs, tc.criteria)
			if len(got) != len(tc.want) {
				t.Fatalf("Filter() returned %d transactions, want %d", len(got), len(tc.want))
			}
			for i, j := range tc.want {
				if got[i] != txs[j] {
					t.Errorf("Filter()[%d] = %+v, want %+v", i, got[i], txs[j])
				}
			}
		})
	}
}

func TestCriteria_SetRange(t *testing.T) {
	var c Criteria
	if err := c.SetFrom(date.MustParse("2024-02-01")); err != nil {
		t.Fatalf("SetFrom() error = %v", err)
	}
	err := c.SetTo(date.MustParse("2024-01-01"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetTo(before from) error = %v, want ErrInvalidRange", err)
	}
	if !c.To.IsZero() {
		t.Errorf("rejected bound was set: %s", c.To)
	}
	if err := c.SetTo(date.MustParse("2024-03-01")); err != nil {
		t.Fatalf("SetTo() error = %v", err)
	}
	if err := c.SetFrom(date.MustParse("2024-04-01")); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetFrom(after to) error = %v, want ErrInvalidRange", err)
	}
	if c.From != date.MustParse("2024-02-01") {
		t.Errorf("From = %s, want the prior bound 2024-02-01", c.From)
	}
	if c.IsZero() {
		t.Errorf("IsZero() = true with bounds set")
	}
}

func TestCriteria_Projects(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", KindDeposit, 100, ""),
		tx("2024-01-02", KindInvestment, -50, "beta"),
		tx("2024-01-03", KindInvestment, -50, "Alpha"),
		tx("2024-01-04", KindReturn, 5, "beta"),
	}
	got := Criteria{Project: "Alpha"}.Projects(txs)
	if want := []string{"Alpha", "beta"}; !slices.Equal(got, want) {
		t.Errorf("Projects() = %v, want %v", got, want)
	}
	if got := (Criteria{}).Projects(nil); len(got) != 0 {
		t.Errorf("Projects(nil) = %v, want none", got)
	}
}
