package crowdfolio

import (
	"slices"

	"github.com/etnz/crowdfolio/date"
)

// PeriodRow aggregates the transactions of one calendar month or year.
type PeriodRow struct {
	Range            date.Range `json:"range"`
	Key              string     `json:"key"` // "2024-03" or "2024"
	Deposits         Money      `json:"deposits"`
	Withdrawals      Money      `json:"withdrawals"`
	Invested         Money      `json:"invested"`
	ReturnedCapital  Money      `json:"returnedCapital"`
	Returns          Money      `json:"returns"`
	MarketingRewards Money      `json:"marketingRewards"`
	Fees             Money      `json:"fees"`
	Profit           Money      `json:"profit"` // Returns + MarketingRewards - Fees
	PercentChange    Percent    `json:"percentChange"`
	Transactions     int        `json:"transactions"`
}

// Label returns the human name of the period.
func (r PeriodRow) Label() string {
	if p, ok := r.Range.Period(); ok && p == date.Yearly {
		return r.Range.From.Format("2006")
	}
	return r.Range.Label()
}

func (r PeriodRow) isEmpty() bool {
	return r.Deposits.IsZero() && r.Withdrawals.IsZero() &&
		r.Invested.IsZero() && r.ReturnedCapital.IsZero() &&
		r.Returns.IsZero() && r.MarketingRewards.IsZero() && r.Fees.IsZero()
}

// PeriodRows buckets txs by calendar month or year and returns the periods
// with some activity in chronological order. Each row's PercentChange
// compares its profit with the previous row's.
func PeriodRows(txs []Transaction, period date.Period) []PeriodRow {
	buckets := make(map[date.Range][]Transaction)
	for _, t := range txs {
		r := period.Range(t.Date)
		buckets[r] = append(buckets[r], t)
	}

	rows := make([]PeriodRow, 0, len(buckets))
	for r, btxs := range buckets {
		totals := NewTotals(btxs)
		row := PeriodRow{
			Range:            r,
			Key:              r.Identifier(),
			Deposits:         totals[KindDeposit],
			Withdrawals:      totals[KindWithdrawal],
			Invested:         totals.CapitalIn(),
			ReturnedCapital:  totals.CapitalOut(),
			Returns:          totals.matching(Kind.IsProfit),
			MarketingRewards: totals.MarketingRewards(),
			Fees:             totals.Fees(),
			Transactions:     len(btxs),
		}
		if row.isEmpty() {
			continue
		}
		row.Profit = row.Returns.Add(row.MarketingRewards).Sub(row.Fees)
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b PeriodRow) int { return a.Range.From.Compare(b.Range.From) })

	for i := 1; i < len(rows); i++ {
		rows[i].PercentChange = percentChange(rows[i-1].Profit, rows[i].Profit)
	}
	return rows
}

// percentChange returns the relative change from prev to cur in percents.
// From a zero profit it is +100 or -100 according to cur's sign.
func percentChange(prev, cur Money) Percent {
	switch {
	case prev.IsZero() && cur.IsZero():
		return 0
	case prev.IsZero() && cur.IsPositive():
		return 100
	case prev.IsZero():
		return -100
	}
	return cur.Sub(prev).Ratio(prev.Abs())
}
