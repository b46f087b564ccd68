package crowdfolio

import (
	"strings"

	"golang.org/x/text/cases"
)

// Kind is the canonical transaction type, independent of the export language.
type Kind string

// Transaction kinds known to the platform exports.
const (
	KindInvestment                Kind = "investment"
	KindAutoInvestment            Kind = "auto-investment"
	KindSale                      Kind = "sale"
	KindPrincipalRepayment        Kind = "principal-repayment"
	KindPartialPrincipalRepayment Kind = "partial-principal-repayment"
	KindMoneyReturn               Kind = "money-return"
	KindWithdrawalRequest         Kind = "withdrawal-request" // withdrawal from the investment contract
	KindDeposit                   Kind = "deposit"
	KindWithdrawal                Kind = "withdrawal"
	KindEarlySaleFee              Kind = "early-sale-fee"
	KindWithdrawalFee             Kind = "withdrawal-fee"
	KindReturn                    Kind = "return"
	KindBonusReturn               Kind = "bonus-return"
	KindContractualPenalty        Kind = "contractual-penalty"
	KindStatutoryInterest         Kind = "statutory-interest"
	KindReward                    Kind = "reward"
	KindExtraordinaryIncome       Kind = "extraordinary-income"
	KindPurchaseOffer             Kind = "purchase-offer"
	KindOfferReturn               Kind = "offer-return"
	KindOther                     Kind = "other"
)

// Kinds lists every kind, in display order.
var Kinds = []Kind{
	KindInvestment, KindAutoInvestment, KindSale, KindPrincipalRepayment,
	KindPartialPrincipalRepayment, KindMoneyReturn, KindWithdrawalRequest,
	KindDeposit, KindWithdrawal, KindEarlySaleFee, KindWithdrawalFee,
	KindReturn, KindBonusReturn, KindContractualPenalty, KindStatutoryInterest,
	KindReward, KindExtraordinaryIncome, KindPurchaseOffer, KindOfferReturn,
	KindOther,
}

// labels are the Czech labels used by the platform, also used on export.
var labels = map[Kind]string{
	KindInvestment:                "Investice",
	KindAutoInvestment:            "Autoinvestice",
	KindSale:                      "Prodej",
	KindPrincipalRepayment:        "Vrácení jistiny",
	KindPartialPrincipalRepayment: "Částečné vrácení jistiny",
	KindMoneyReturn:               "Vrácení peněz",
	KindWithdrawalRequest:         "Odstoupení",
	KindDeposit:                   "Vklad",
	KindWithdrawal:                "Výběr",
	KindEarlySaleFee:              "Poplatek za předčasný prodej",
	KindWithdrawalFee:             "Poplatek za výběr",
	KindReturn:                    "Výnos",
	KindBonusReturn:               "Bonusový výnos",
	KindContractualPenalty:        "Smluvní pokuta",
	KindStatutoryInterest:         "Zákonné úroky",
	KindReward:                    "Odměna",
	KindExtraordinaryIncome:       "Mimořádný příjem",
	KindPurchaseOffer:             "Nabídka ke koupi",
	KindOfferReturn:               "Vrácení nabídky",
	KindOther:                     "Ostatní",
}

// englishLabels are accepted on import for English exports.
var englishLabels = map[string]Kind{
	"Investment":                  KindInvestment,
	"Auto-investment":             KindAutoInvestment,
	"Autoinvestment":              KindAutoInvestment,
	"Sale":                        KindSale,
	"Principal repayment":         KindPrincipalRepayment,
	"Withdrawal of principal":     KindPrincipalRepayment,
	"Partial principal repayment": KindPartialPrincipalRepayment,
	"Money return":                KindMoneyReturn,
	"Withdrawal request":          KindWithdrawalRequest,
	"Withdrawal from contract":    KindWithdrawalRequest,
	"Deposit":                     KindDeposit,
	"Withdrawal":                  KindWithdrawal,
	"Early sale fee":              KindEarlySaleFee,
	"Withdrawal fee":              KindWithdrawalFee,
	"Return":                      KindReturn,
	"Bonus return":                KindBonusReturn,
	"Contractual penalty":         KindContractualPenalty,
	"Statutory interest":          KindStatutoryInterest,
	"Reward":                      KindReward,
	"Extraordinary income":        KindExtraordinaryIncome,
	"Purchase offer":              KindPurchaseOffer,
	"Offer return":                KindOfferReturn,
	"Other":                       KindOther,
}

// Label returns the platform label of the kind.
func (k Kind) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return labels[KindOther]
}

func (k Kind) String() string { return string(k) }

// Classification sets. Every aggregator reads the kind through these and
// never through the sign of the raw amount.
var (
	capitalIn      = kindSet(KindAutoInvestment, KindInvestment)
	capitalOut     = kindSet(KindSale, KindPrincipalRepayment, KindPartialPrincipalRepayment, KindMoneyReturn, KindWithdrawalRequest)
	profitKinds    = kindSet(KindReturn, KindBonusReturn, KindContractualPenalty, KindStatutoryInterest)
	profitFees     = kindSet(KindEarlySaleFee, KindWithdrawalFee)
	rewardKinds    = kindSet(KindReward, KindExtraordinaryIncome)
	repaymentKinds = kindSet(KindPrincipalRepayment, KindPartialPrincipalRepayment)
	timelineKinds  = kindSet(KindInvestment, KindAutoInvestment, KindSale, KindWithdrawalRequest, KindDeposit, KindWithdrawal, KindMoneyReturn)
	// outflowKinds move money out of the investor's wallet.
	outflowKinds = kindSet(KindInvestment, KindAutoInvestment, KindWithdrawal, KindEarlySaleFee, KindWithdrawalFee, KindPurchaseOffer)
)

func kindSet(kinds ...Kind) map[Kind]bool {
	s := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

// IsCapitalIn reports investments, manual or automatic.
func (k Kind) IsCapitalIn() bool { return capitalIn[k] }

// IsCapitalOut reports capital flowing back from projects: sales, principal
// repayments, money returns and withdrawals from the contract.
func (k Kind) IsCapitalOut() bool { return capitalOut[k] }

// IsCapital reports any capital movement.
func (k Kind) IsCapital() bool { return capitalIn[k] || capitalOut[k] }

// IsProfit reports returns, bonus returns, penalties and statutory interest.
func (k Kind) IsProfit() bool { return profitKinds[k] }

// IsProfitFee reports the fees deducted from the profits.
func (k Kind) IsProfitFee() bool { return profitFees[k] }

// IsReward reports marketing rewards and extraordinary income.
func (k Kind) IsReward() bool { return rewardKinds[k] }

// IsRepayment reports full and partial principal repayments.
func (k Kind) IsRepayment() bool { return repaymentKinds[k] }

// IsTimeline reports the capital movements shown on the timeline.
func (k Kind) IsTimeline() bool { return timelineKinds[k] }

// IsOutflow reports money leaving the investor's wallet.
func (k Kind) IsOutflow() bool { return outflowKinds[k] }

// Taxonomy maps raw type labels to kinds. The zero value is not usable, use
// NewTaxonomy.
type Taxonomy struct {
	fold    cases.Caser
	byLabel map[string]Kind
}

// NewTaxonomy returns the taxonomy knowing the Czech and English labels and
// the kind names themselves.
func NewTaxonomy() *Taxonomy {
	t := &Taxonomy{fold: cases.Fold(), byLabel: make(map[string]Kind)}
	for k, l := range labels {
		t.Alias(l, k)
		t.Alias(string(k), k)
	}
	for l, k := range englishLabels {
		t.Alias(l, k)
	}
	return t
}

// Alias registers an additional label for a kind. Matching ignores case and
// surrounding spaces.
func (t *Taxonomy) Alias(label string, kind Kind) {
	t.byLabel[t.key(label)] = kind
}

// Classify returns the kind of a raw label, KindOther when unknown.
func (t *Taxonomy) Classify(label string) Kind {
	if k, ok := t.byLabel[t.key(label)]; ok {
		return k
	}
	return KindOther
}

// ParseKind returns the kind designated by a kind name or a label.
func (t *Taxonomy) ParseKind(s string) (Kind, bool) {
	k, ok := t.byLabel[t.key(s)]
	return k, ok
}

func (t *Taxonomy) key(label string) string {
	return t.fold.String(strings.Join(strings.Fields(label), " "))
}
