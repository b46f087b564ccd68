package crowdfolio

import (
	"github.com/etnz/crowdfolio/date"
)

// twrrMonths is the length of the trailing window of the time-weighted return.
const twrrMonths = 12

// MonthlyReturn is one month of a time-weighted return computation.
type MonthlyReturn struct {
	Month       date.Range `json:"month"`
	StartBase   Money      `json:"startBase"`   // capital base at the beginning of the month
	NetInvested Money      `json:"netInvested"` // capital in minus capital out during the month
	Profit      Money      `json:"profit"`
	Return      Percent    `json:"return"`
	Skipped     bool       `json:"skipped"` // the base was not positive
}

// Performance is a time-weighted rate of return and the months it compounds.
type Performance struct {
	Months []MonthlyReturn `json:"months"`
	Return Percent         `json:"return"`
}

// TWRR computes the time-weighted rate of return over the twelve calendar
// months ending with asOf's month.
//
// The capital base excludes any profit: it starts with the net capital moved
// before the window and then follows each month's net investment. A month
// returns its profit over the base it started with, and is skipped when that
// base is not positive. Monthly returns compound geometrically. Marketing
// rewards count as profit only when withMarketing is set.
func TWRR(txs []Transaction, asOf date.Date, withMarketing bool) Performance {
	first := asOf.AddMonth(1 - twrrMonths)

	months := make([][]Transaction, twrrMonths)
	var base Money
	for _, t := range txs {
		if t.Date.Before(first) {
			switch {
			case t.Kind.IsCapitalIn():
				base = base.Add(t.Abs())
			case t.Kind.IsCapitalOut():
				base = base.Sub(t.Abs())
			}
			continue
		}
		if i := first.MonthsUntil(t.Date); i < twrrMonths {
			months[i] = append(months[i], t)
		}
	}

	perf := Performance{Months: make([]MonthlyReturn, 0, twrrMonths)}
	growth := 1.0
	for i, monthTxs := range months {
		totals := NewTotals(monthTxs)
		profit := totals.Profits()
		if withMarketing {
			profit = profit.Add(totals.MarketingRewards())
		}
		m := MonthlyReturn{
			Month:       date.Monthly.Range(first.AddMonth(i)),
			StartBase:   base,
			NetInvested: totals.NetPortfolioSize(),
			Profit:      profit,
		}
		if base.IsPositive() {
			m.Return = profit.Ratio(base)
			growth *= 1 + float64(m.Return)/100
		} else {
			m.Skipped = true
		}
		base = base.Add(m.NetInvested)
		perf.Months = append(perf.Months, m)
	}
	perf.Return = Percent(finite((growth - 1) * 100))
	return perf
}
