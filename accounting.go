package crowdfolio

import (
	"github.com/etnz/crowdfolio/date"
)

// This file holds the accounting formulas shared by every report. They all
// read amounts as absolute values and take the direction from the kind, the
// only exception being the project exposure (see Exposure).

// Totals accumulates the absolute amount of each kind.
type Totals map[Kind]Money

// NewTotals sums |amount| per kind.
func NewTotals(txs []Transaction) Totals {
	totals := make(Totals)
	for _, t := range txs {
		totals[t.Kind] = totals[t.Kind].Add(t.Abs())
	}
	return totals
}

// Of returns the sum of the given kinds.
func (s Totals) Of(kinds ...Kind) Money {
	var total Money
	for _, k := range kinds {
		total = total.Add(s[k])
	}
	return total
}

// matching returns the sum of all kinds satisfying pred.
func (s Totals) matching(pred func(Kind) bool) Money {
	var total Money
	for _, k := range Kinds {
		if pred(k) {
			total = total.Add(s[k])
		}
	}
	return total
}

// CapitalIn is the sum of investments and auto-investments.
func (s Totals) CapitalIn() Money { return s.matching(Kind.IsCapitalIn) }

// CapitalOut is the sum of capital flowing back from projects.
func (s Totals) CapitalOut() Money { return s.matching(Kind.IsCapitalOut) }

// NetPortfolioSize is the capital currently committed to projects.
func (s Totals) NetPortfolioSize() Money { return s.CapitalIn().Sub(s.CapitalOut()) }

// Profits is the sum of profit kinds, net of the profit-reducing fees.
func (s Totals) Profits() Money {
	return s.matching(Kind.IsProfit).Sub(s.matching(Kind.IsProfitFee))
}

// Fees is the sum of the profit-reducing fees.
func (s Totals) Fees() Money { return s.matching(Kind.IsProfitFee) }

// MarketingRewards is the sum of rewards and extraordinary income.
func (s Totals) MarketingRewards() Money { return s.matching(Kind.IsReward) }

// GrossCurrentYield is the profit relative to all base investments, in percents.
func (s Totals) GrossCurrentYield() Percent {
	return s.Profits().Ratio(s.Of(KindInvestment, KindAutoInvestment))
}

// WalletBalance is the cash available on the platform account, as an absolute value.
func (s Totals) WalletBalance() Money {
	return s[KindDeposit].
		Sub(s.NetPortfolioSize()).
		Add(s.Profits()).
		Sub(s[KindWithdrawal]).
		Sub(s[KindPurchaseOffer]).
		Add(s[KindOfferReturn]).
		Add(s.MarketingRewards()).
		Abs()
}

// BlockedOnMarket is the cash locked in pending secondary market offers.
func (s Totals) BlockedOnMarket() Money {
	return s[KindPurchaseOffer].Sub(s[KindOfferReturn])
}

// NetPortfolioSize is a shortcut for NewTotals(txs).NetPortfolioSize().
func NetPortfolioSize(txs []Transaction) Money { return NewTotals(txs).NetPortfolioSize() }

// PortfolioSizeAt returns the net portfolio size computed over the
// transactions dated on or before 'on'.
func PortfolioSizeAt(txs []Transaction, on date.Date) Money {
	var in, out Money
	for _, t := range txs {
		if t.Date.After(on) {
			continue
		}
		switch {
		case t.Kind.IsCapitalIn():
			in = in.Add(t.Abs())
		case t.Kind.IsCapitalOut():
			out = out.Add(t.Abs())
		}
	}
	return in.Sub(out)
}

// SignConvention tells how a feed signs its amounts.
type SignConvention int

const (
	// Signed feeds export outflows from the wallet as negative amounts.
	Signed SignConvention = iota
	// Unsigned feeds export every amount as a positive number.
	Unsigned
)

// DetectSignConvention returns Signed when any outflow transaction carries a
// negative amount, Unsigned otherwise.
func DetectSignConvention(txs []Transaction) SignConvention {
	for _, t := range txs {
		if t.Kind.IsOutflow() && t.Amount.IsNegative() {
			return Signed
		}
	}
	return Unsigned
}

// SignedAmount returns the wallet-signed amount of t under the convention:
// the raw amount for Signed feeds, the kind's direction applied to |amount|
// for Unsigned ones.
func SignedAmount(t Transaction, conv SignConvention) Money {
	if conv == Signed {
		return t.Amount
	}
	if t.Kind.IsOutflow() {
		return t.Abs().Neg()
	}
	return t.Abs()
}

// Exposure returns the capital committed per project: the wallet-signed
// amounts of capital movements, subtracted. Transactions without project are
// ignored.
func Exposure(txs []Transaction) map[string]Money {
	conv := DetectSignConvention(txs)
	exposure := make(map[string]Money)
	for _, t := range txs {
		if !t.HasProject() || !t.Kind.IsCapital() {
			continue
		}
		exposure[t.Project] = exposure[t.Project].Sub(SignedAmount(t, conv))
	}
	return exposure
}

// Stages counts projects by life stage.
type Stages struct {
	Active int `json:"active"` // projects with a positive exposure
	Total  int `json:"total"`  // projects ever invested in
}

// PortfolioStages counts the active projects (exposure rounded to cents is
// positive) and all the projects that received an investment.
func PortfolioStages(txs []Transaction) Stages {
	var s Stages
	for _, v := range Exposure(txs) {
		if v.Cents().IsPositive() {
			s.Active++
		}
	}
	invested := make(map[string]bool)
	for _, t := range txs {
		if t.HasProject() && t.Kind.IsCapitalIn() {
			invested[t.Project] = true
		}
	}
	s.Total = len(invested)
	return s
}
