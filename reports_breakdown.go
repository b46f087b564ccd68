package crowdfolio

import (
	"github.com/etnz/crowdfolio/date"
)

// BreakdownItem is one named part of a Breakdown.
type BreakdownItem struct {
	Name   string  `json:"name"`
	Kinds  []Kind  `json:"kinds"`
	Amount Money   `json:"amount"` // negative for deductions
	Share  Percent `json:"share"`  // of the sum of absolute amounts
}

// Breakdown decomposes a total into fixed named parts.
type Breakdown struct {
	Name  string          `json:"name"`
	Total Money           `json:"total"`
	Items []BreakdownItem `json:"items"`
}

// part declares one item of a breakdown.
type part struct {
	name   string
	deduct bool
	kinds  []Kind
}

func newBreakdown(name string, totals Totals, parts ...part) Breakdown {
	b := Breakdown{Name: name, Items: make([]BreakdownItem, 0, len(parts))}
	var gross Money
	for _, p := range parts {
		amount := totals.Of(p.kinds...)
		gross = gross.Add(amount)
		if p.deduct {
			amount = amount.Neg()
		}
		b.Total = b.Total.Add(amount)
		b.Items = append(b.Items, BreakdownItem{Name: p.name, Kinds: p.kinds, Amount: amount})
	}
	for i := range b.Items {
		b.Items[i].Share = b.Items[i].Amount.Abs().Ratio(gross)
	}
	return b
}

// FeeBreakdown splits the profit-reducing fees.
func FeeBreakdown(txs []Transaction) Breakdown {
	return newBreakdown("Fees", NewTotals(txs),
		part{name: "Early sale fees", kinds: []Kind{KindEarlySaleFee}},
		part{name: "Withdrawal fees", kinds: []Kind{KindWithdrawalFee}},
	)
}

// NetProfitBreakdown splits the net profit into its sources and the fees
// deducted from it. Its total equals TotalProfits.
func NetProfitBreakdown(txs []Transaction) Breakdown {
	return newBreakdown("Net profit", NewTotals(txs),
		part{name: "Returns", kinds: []Kind{KindReturn}},
		part{name: "Bonus returns", kinds: []Kind{KindBonusReturn}},
		part{name: "Contractual penalties", kinds: []Kind{KindContractualPenalty}},
		part{name: "Statutory interest", kinds: []Kind{KindStatutoryInterest}},
		part{name: "Fees", deduct: true, kinds: []Kind{KindEarlySaleFee, KindWithdrawalFee}},
	)
}

// MarketingBreakdown splits the marketing rewards.
func MarketingBreakdown(txs []Transaction) Breakdown {
	return newBreakdown("Marketing", NewTotals(txs),
		part{name: "Rewards", kinds: []Kind{KindReward}},
		part{name: "Extraordinary income", kinds: []Kind{KindExtraordinaryIncome}},
	)
}

// CurrentMonthPayout splits what the platform paid out during the month of 'on'.
func CurrentMonthPayout(txs []Transaction, on date.Date) Breakdown {
	month := date.Monthly.Range(on)
	var inMonth []Transaction
	for _, t := range txs {
		if month.Contains(t.Date) {
			inMonth = append(inMonth, t)
		}
	}
	return newBreakdown("Current month payout", NewTotals(inMonth),
		part{name: "Returns", kinds: []Kind{KindReturn, KindBonusReturn}},
		part{name: "Penalties and interest", kinds: []Kind{KindContractualPenalty, KindStatutoryInterest}},
		part{name: "Principal", kinds: []Kind{KindPrincipalRepayment, KindPartialPrincipalRepayment}},
		part{name: "Rewards", kinds: []Kind{KindReward, KindExtraordinaryIncome}},
	)
}
