package crowdfolio

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/etnz/crowdfolio/date"
)

func TestFeeBreakdown(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", KindEarlySaleFee, -30, "A"),
		tx("2024-01-02", KindWithdrawalFee, -10, ""),
	}
	b := FeeBreakdown(txs)
	assertMoney(t, "Total", b.Total, 40)
	if !b.Items[0].Share.Equal(75) || !b.Items[1].Share.Equal(25) {
		t.Errorf("shares = %v, %v, want 75, 25", b.Items[0].Share, b.Items[1].Share)
	}
}

func TestNetProfitBreakdown(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", KindReturn, 80, "A"),
		tx("2024-01-02", KindBonusReturn, 10, "A"),
		tx("2024-01-03", KindStatutoryInterest, 10, "A"),
		tx("2024-01-04", KindEarlySaleFee, 20, "A"),
	}
	b := NetProfitBreakdown(txs)
	assertMoney(t, "Total", b.Total, 80)
	if !b.Total.Equal(NewTotals(txs).Profits()) {
		t.Errorf("Total = %s, want TotalProfits", b.Total)
	}
	fees := b.Items[len(b.Items)-1]
	assertMoney(t, "fees item", fees.Amount, -20)
	if !fees.Share.Equal(100.0 * 20 / 120) {
		t.Errorf("fees share = %v", fees.Share)
	}
}

func TestCurrentMonthPayout(t *testing.T) {
	txs := []Transaction{
		tx("2024-05-31", KindReturn, 999, "A"),
		tx("2024-06-01", KindReturn, 10, "A"),
		tx("2024-06-02", KindContractualPenalty, 5, "A"),
		tx("2024-06-03", KindPrincipalRepayment, 500, "A"),
		tx("2024-06-04", KindReward, 5, ""),
		tx("2024-06-05", KindInvestment, 1000, "B"),
	}
	b := CurrentMonthPayout(txs, date.MustParse("2024-06-15"))
	assertMoney(t, "Total", b.Total, 520)
	assertMoney(t, "Principal", b.Items[2].Amount, 500)
}

func TestMarketingBreakdown(t *testing.T) {
	b := MarketingBreakdown([]Transaction{tx("2024-06-04", KindExtraordinaryIncome, 5, "")})
	if !b.Items[1].Share.Equal(100) || !b.Items[0].Share.Equal(0) {
		t.Errorf("MarketingBreakdown() = %+v", b.Items)
	}
}

// TestAggregates_Empty checks that every aggregate accepts an empty input and
// returns only zero values.
func TestAggregates_Empty(t *testing.T) {
	asOf := date.MustParse("2024-06-15")
	overview := NewOverview(nil, asOf)
	if overview.AutoInvest.First != nil || overview.Stages != (Stages{}) || overview.Transactions != 0 {
		t.Errorf("NewOverview(nil) = %+v, want an empty overview", overview)
	}
	for _, b := range []Breakdown{overview.Fees, overview.NetProfit, overview.Marketing, overview.CurrentMonthPayout} {
		if !b.Total.IsZero() {
			t.Errorf("%s total = %s, want 0", b.Name, b.Total)
		}
		for _, item := range b.Items {
			if item.Share != 0 || !item.Amount.IsZero() {
				t.Errorf("%s/%s = %+v, want zeros", b.Name, item.Name, item)
			}
		}
	}
	if rows := ProjectRows(nil); len(rows) != 0 {
		t.Errorf("ProjectRows(nil) = %v", rows)
	}
	if rows := PeriodRows(nil, date.Monthly); len(rows) != 0 {
		t.Errorf("PeriodRows(nil) = %v", rows)
	}
	if s := NewAdvancedStats(nil); s != (AdvancedStats{}) {
		t.Errorf("NewAdvancedStats(nil) = %+v, want zero", s)
	}
	if got := Filter(nil, Criteria{}); len(got) != 0 {
		t.Errorf("Filter(nil) = %v", got)
	}

	data, err := json.Marshal(overview)
	if err != nil {
		t.Fatalf("json.Marshal(overview) error = %v", err)
	}
	if s := string(data); strings.Contains(s, "NaN") || strings.Contains(s, "Inf") {
		t.Errorf("overview json has non finite values: %s", s)
	}
	for _, p := range []Percent{overview.GrossCurrentYield, overview.TWRR, overview.TWRRNoMarketing} {
		if math.IsNaN(float64(p)) || p != 0 {
			t.Errorf("percent = %v, want 0", p)
		}
	}
}

// TestNewOverview_OrderIndependent checks that a shuffled input gives the same overview.
func TestNewOverview_OrderIndependent(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", KindDeposit, 5000, ""),
		tx("2024-01-02", KindInvestment, -1000, "A"),
		tx("2024-02-01", KindAutoInvestment, -500, "B"),
		tx("2024-03-01", KindReturn, 25, "A"),
		tx("2024-04-01", KindSale, 200, "B"),
		tx("2024-05-01", KindReward, 50, ""),
	}
	reversed := make([]Transaction, len(txs))
	for i, t := range txs {
		reversed[len(txs)-1-i] = t
	}
	asOf := date.MustParse("2024-06-30")
	a, _ := json.Marshal(NewOverview(txs, asOf))
	b, _ := json.Marshal(NewOverview(reversed, asOf))
	if string(a) != string(b) {
		t.Errorf("NewOverview() depends on input order:\n%s\n%s", a, b)
	}
}
