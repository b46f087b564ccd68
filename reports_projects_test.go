package crowdfolio

import (
	"testing"
)

func TestProjectRows(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", KindInvestment, -1000, "Alpha"),
		tx("2024-01-01", KindInvestment, -1000, "Gamma"),
		tx("2024-02-01", KindReturn, 100, "Gamma"),
		tx("2024-03-01", KindPartialPrincipalRepayment, 200, "Gamma"),
		tx("2024-04-01", KindSale, 300, "Gamma"),
		tx("2024-04-01", KindEarlySaleFee, -6, "Gamma"),
		tx("2024-05-01", KindReward, 10, "Beta"),
		tx("2024-05-01", KindDeposit, 10, ""),
	}
	txs[2].ProjectURL = "https://example.com/gamma"

	rows := ProjectRows(txs)
	if len(rows) != 2 {
		t.Fatalf("ProjectRows() returned %d rows, want 2: %+v", len(rows), rows)
	}

	alpha := rows[0]
	if alpha.Project != "Alpha" {
		t.Fatalf("first row = %q, want Alpha", alpha.Project)
	}
	assertMoney(t, "Alpha investment", alpha.Investment, 1000)
	assertMoney(t, "Alpha remaining", alpha.Remaining, 1000)
	if alpha.Yield != 0 || !alpha.Active {
		t.Errorf("Alpha yield=%v active=%v, want 0 and active", alpha.Yield, alpha.Active)
	}

	gamma := rows[1]
	assertMoney(t, "Gamma returns", gamma.Returns, 100)
	assertMoney(t, "Gamma repaid", gamma.Repaid, 200)
	assertMoney(t, "Gamma sales", gamma.Sales, 300)
	assertMoney(t, "Gamma remaining", gamma.Remaining, 500)
	assertMoney(t, "Gamma fees", gamma.Fees, 6)
	if !gamma.Yield.Equal(10) {
		t.Errorf("Gamma yield = %v, want 10", gamma.Yield)
	}
	if gamma.URL != "https://example.com/gamma" || gamma.Transactions != 5 {
		t.Errorf("Gamma url=%q transactions=%d", gamma.URL, gamma.Transactions)
	}
	if gamma.First.String() != "2024-01-01" || gamma.Last.String() != "2024-04-01" {
		t.Errorf("Gamma activity %s..%s, want 2024-01-01..2024-04-01", gamma.First, gamma.Last)
	}
}

func TestProjectRows_WithdrawalRequest(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", KindAutoInvestment, 100, "Alpha"),
		tx("2024-01-15", KindWithdrawalRequest, 100, "Alpha"),
	}
	if rows := ProjectRows(txs); len(rows) != 0 {
		t.Errorf("ProjectRows() = %+v, want no row once the investment is withdrawn", rows)
	}
}

func TestTopProjects(t *testing.T) {
	rows := []ProjectRow{
		{Project: "B", Investment: CZK(100)},
		{Project: "A", Investment: CZK(300)},
		{Project: "C", Investment: CZK(100)},
	}
	top := TopProjects(rows, 2)
	if len(top) != 2 || top[0].Project != "A" || top[1].Project != "B" {
		t.Errorf("TopProjects() = %+v, want A then B", top)
	}
	if rows[0].Project != "B" {
		t.Errorf("TopProjects() modified its input")
	}
}
