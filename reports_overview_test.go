package crowdfolio

import (
	"testing"

	"github.com/etnz/crowdfolio/date"
)

func overviewSample() []Transaction {
	return []Transaction{
		tx("2024-01-01", KindDeposit, 10000, ""),
		tx("2024-01-02", KindAutoInvestment, -1000, "Alpha"),
		tx("2024-01-20", KindAutoInvestment, -500, "Beta"),
		tx("2024-02-10", KindInvestment, -300, "Alpha"),
		tx("2024-02-15", KindReturn, 60, "Alpha"),
		tx("2024-03-01", KindPrincipalRepayment, 500, "Beta"),
		tx("2024-03-05", KindEarlySaleFee, -10, "Alpha"),
	}
}

func TestNewOverview(t *testing.T) {
	asOf := date.MustParse("2024-03-31")
	o := NewOverview(overviewSample(), asOf)

	if o.AsOf != asOf {
		t.Errorf("AsOf = %v, want %v", o.AsOf, asOf)
	}
	if o.Transactions != 7 || o.Projects != 2 {
		t.Errorf("counts = %d transactions in %d projects, want 7 in 2", o.Transactions, o.Projects)
	}
	wantSpan := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-03-05"))
	if o.Span != wantSpan {
		t.Errorf("Span = %v, want %v", o.Span, wantSpan)
	}

	assertMoney(t, "Deposits", o.Deposits, 10000)
	assertMoney(t, "TotalInvested", o.TotalInvested, 1800)
	assertMoney(t, "NetPortfolioSize", o.NetPortfolioSize, 1300)
	assertMoney(t, "TotalProfits", o.TotalProfits, 50)
	assertMoney(t, "TotalMarketingRewards", o.TotalMarketingRewards, 0)
	assertMoney(t, "WalletBalance", o.WalletBalance, 8750)
	assertMoney(t, "BlockedOnMarket", o.BlockedOnMarket, 0)
	if want := Percent(50.0 / 1800 * 100); !o.GrossCurrentYield.Equal(want) {
		t.Errorf("GrossCurrentYield = %v, want %v", o.GrossCurrentYield, want)
	}
	if o.Stages != (Stages{Active: 1, Total: 2}) {
		t.Errorf("Stages = %+v, want 1 active of 2", o.Stages)
	}
	if !o.TWRR.Equal(o.Performance.Return) || !o.TWRRNoMarketing.Equal(o.PerformanceNoMarketing.Return) {
		t.Error("TWRR figures differ from their performance series")
	}

	assertMoney(t, "NetProfit.Total", o.NetProfit.Total, 50)
	assertMoney(t, "Fees.Total", o.Fees.Total, 10)
	assertMoney(t, "CurrentMonthPayout.Total", o.CurrentMonthPayout.Total, 500)
}

func TestNewOverview_Empty(t *testing.T) {
	o := NewOverview(nil, date.MustParse("2024-03-31"))
	if o.Transactions != 0 || o.Projects != 0 || !o.Span.From.IsZero() {
		t.Errorf("NewOverview(nil) = %+v, want empty", o)
	}
	assertMoney(t, "NetPortfolioSize", o.NetPortfolioSize, 0)
	if o.GrossCurrentYield != 0 || o.TWRR != 0 {
		t.Errorf("yields = %v, %v, want 0", o.GrossCurrentYield, o.TWRR)
	}
	if o.AutoInvest.Count != 0 || o.AutoInvest.First != nil {
		t.Errorf("AutoInvest = %+v, want zero", o.AutoInvest)
	}
}

func TestNewAutoInvestStats(t *testing.T) {
	s := NewAutoInvestStats(overviewSample())

	if s.Count != 2 {
		t.Fatalf("Count = %d, want 2", s.Count)
	}
	assertMoney(t, "Total", s.Total, 1500)
	assertMoney(t, "Average", s.Average, 750)
	if s.First == nil || s.First.Project != "Alpha" {
		t.Errorf("First = %+v, want the Alpha auto-investment", s.First)
	}
	if s.Last == nil || s.Last.Project != "Beta" {
		t.Errorf("Last = %+v, want the Beta auto-investment", s.Last)
	}
}

func TestNewAutoInvestStats_Unordered(t *testing.T) {
	txs := []Transaction{
		tx("2024-03-01", KindAutoInvestment, -200, "B"),
		tx("2024-01-01", KindAutoInvestment, -100, "A"),
		tx("2024-02-01", KindInvestment, -5000, "C"),
		tx("2024-02-01", KindAutoInvestment, -100, "C"),
	}
	s := NewAutoInvestStats(txs)
	if s.Count != 3 {
		t.Fatalf("Count = %d, want 3", s.Count)
	}
	assertMoney(t, "Total", s.Total, 400)
	assertMoney(t, "Average", s.Average, 133.33)
	if s.First.Project != "A" || s.Last.Project != "B" {
		t.Errorf("First = %s, Last = %s, want A and B", s.First.Project, s.Last.Project)
	}
}
