package crowdfolio

import (
	"github.com/etnz/crowdfolio/date"
)

// Overview gathers the headline statistics of a set of transactions.
type Overview struct {
	AsOf         date.Date  `json:"asOf"`
	Transactions int        `json:"transactions"`
	Projects     int        `json:"projects"`
	Span         date.Range `json:"span"`

	Deposits              Money   `json:"deposits"`
	Withdrawals           Money   `json:"withdrawals"`
	TotalInvested         Money   `json:"totalInvested"`
	NetPortfolioSize      Money   `json:"netPortfolioSize"`
	TotalProfits          Money   `json:"totalProfits"`
	TotalMarketingRewards Money   `json:"totalMarketingRewards"`
	GrossCurrentYield     Percent `json:"grossCurrentYield"`
	WalletBalance         Money   `json:"walletBalance"`
	BlockedOnMarket       Money   `json:"blockedOnMarket"`
	Stages                Stages  `json:"portfolioStages"`

	TWRR                   Percent     `json:"twrr"`
	TWRRNoMarketing        Percent     `json:"twrrNoMarketing"`
	Performance            Performance `json:"performance"`
	PerformanceNoMarketing Performance `json:"performanceNoMarketing"`

	AutoInvest         AutoInvestStats `json:"autoInvest"`
	Fees               Breakdown       `json:"fees"`
	NetProfit          Breakdown       `json:"netProfit"`
	Marketing          Breakdown       `json:"marketing"`
	CurrentMonthPayout Breakdown       `json:"currentMonthPayout"`
}

// NewOverview computes the overview of txs. asOf is the reference day of the
// trailing return window and of the current month payout.
func NewOverview(txs []Transaction, asOf date.Date) Overview {
	totals := NewTotals(txs)
	span, _ := DateSpan(txs)
	perf := TWRR(txs, asOf, true)
	perfNoMarketing := TWRR(txs, asOf, false)
	return Overview{
		AsOf:         asOf,
		Transactions: len(txs),
		Projects:     len(Projects(txs)),
		Span:         span,

		Deposits:              totals[KindDeposit],
		Withdrawals:           totals[KindWithdrawal],
		TotalInvested:         totals.CapitalIn(),
		NetPortfolioSize:      totals.NetPortfolioSize(),
		TotalProfits:          totals.Profits(),
		TotalMarketingRewards: totals.MarketingRewards(),
		GrossCurrentYield:     totals.GrossCurrentYield(),
		WalletBalance:         totals.WalletBalance(),
		BlockedOnMarket:       totals.BlockedOnMarket(),
		Stages:                PortfolioStages(txs),

		TWRR:                   perf.Return,
		TWRRNoMarketing:        perfNoMarketing.Return,
		Performance:            perf,
		PerformanceNoMarketing: perfNoMarketing,

		AutoInvest:         NewAutoInvestStats(txs),
		Fees:               FeeBreakdown(txs),
		NetProfit:          NetProfitBreakdown(txs),
		Marketing:          MarketingBreakdown(txs),
		CurrentMonthPayout: CurrentMonthPayout(txs, asOf),
	}
}

// AutoInvestStats describes the automatic investments.
type AutoInvestStats struct {
	Count   int          `json:"count"`
	Total   Money        `json:"total"`
	Average Money        `json:"average"`
	First   *Transaction `json:"first,omitempty"`
	Last    *Transaction `json:"last,omitempty"`
}

// NewAutoInvestStats summarizes the auto-investment transactions. It is the
// zero value when there is none.
func NewAutoInvestStats(txs []Transaction) AutoInvestStats {
	var s AutoInvestStats
	for _, t := range txs {
		if t.Kind != KindAutoInvestment {
			continue
		}
		s.Count++
		s.Total = s.Total.Add(t.Abs())
		if s.First == nil || t.Date.Before(s.First.Date) {
			first := t
			s.First = &first
		}
		if s.Last == nil || !t.Date.Before(s.Last.Date) {
			last := t
			s.Last = &last
		}
	}
	if s.Count > 0 {
		s.Average = s.Total.DivInt(s.Count).Cents()
	}
	return s
}
