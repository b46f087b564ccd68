package crowdfolio

import (
	"math"
	"math/rand"
	"testing"

	"github.com/etnz/crowdfolio/date"
)

func TestPeriodRows_Monthly(t *testing.T) {
	txs := []Transaction{
		tx("2024-10-03", KindPurchaseOffer, 300, "Beta"), // no reported category
		tx("2024-11-01", KindReturn, 150, "Alpha"),
		tx("2024-11-12", KindReward, 60, ""),
		tx("2024-11-20", KindWithdrawalFee, 10, ""),
		tx("2024-12-01", KindDeposit, 1000, ""),
		tx("2025-01-05", KindBonusReturn, 100, "Alpha"),
	}
	rows := PeriodRows(txs, date.Monthly)

	if len(rows) != 3 {
		t.Fatalf("PeriodRows() returned %d rows, want 3: %+v", len(rows), rows)
	}
	wantKeys := []string{"2024-11", "2024-12", "2025-01"}
	wantProfit := []float64{200, 0, 100}
	wantChange := []Percent{0, -100, 100}
	for i, row := range rows {
		if row.Key != wantKeys[i] {
			t.Errorf("row %d key = %q, want %q", i, row.Key, wantKeys[i])
		}
		assertMoney(t, row.Key+" profit", row.Profit, wantProfit[i])
		if !row.PercentChange.Equal(wantChange[i]) {
			t.Errorf("row %s percent change = %v, want %v", row.Key, row.PercentChange, wantChange[i])
		}
	}
	if got := rows[0].Label(); got != "November 2024" {
		t.Errorf("Label() = %q, want November 2024", got)
	}
}

func TestPeriodRows_Yearly(t *testing.T) {
	txs := []Transaction{
		tx("2023-05-01", KindReturn, 100, "Alpha"),
		tx("2023-09-01", KindReturn, 100, "Alpha"),
		tx("2024-02-01", KindReturn, 250, "Alpha"),
		tx("2024-03-01", KindEarlySaleFee, 50, "Alpha"),
	}
	rows := PeriodRows(txs, date.Yearly)
	if len(rows) != 2 {
		t.Fatalf("PeriodRows() returned %d rows, want 2", len(rows))
	}
	if rows[1].Key != "2024" || rows[1].Label() != "2024" {
		t.Errorf("second row = %q %q, want 2024", rows[1].Key, rows[1].Label())
	}
	assertMoney(t, "2024 profit", rows[1].Profit, 200)
	if !rows[1].PercentChange.Equal(0) {
		t.Errorf("2024 percent change = %v, want 0", rows[1].PercentChange)
	}
}

func TestPeriodRows_ProfitInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var txs []Transaction
	start := date.MustParse("2022-01-01")
	for i := 0; i < 500; i++ {
		kind := Kinds[r.Intn(len(Kinds))]
		amount := math.Round(r.Float64()*200000-100000) / 100
		txs = append(txs, Transaction{Date: start.Add(r.Intn(900)), Kind: kind, Amount: CZK(amount)})
	}
	for _, period := range []date.Period{date.Monthly, date.Yearly} {
		for _, row := range PeriodRows(txs, period) {
			want := row.Returns.Add(row.MarketingRewards).Sub(row.Fees)
			if math.Abs(row.Profit.Float()-want.Float()) > 1e-6 {
				t.Errorf("%s profit = %s, want %s", row.Key, row.Profit.Decimal(), want.Decimal())
			}
		}
	}
}

func TestPercentChange(t *testing.T) {
	testCases := []struct {
		prev, cur float64
		want      Percent
	}{
		{prev: 200, cur: 0, want: -100},
		{prev: 100, cur: 150, want: 50},
		{prev: -100, cur: 50, want: 150},
		{prev: 0, cur: 10, want: 100},
		{prev: 0, cur: -10, want: -100},
		{prev: 0, cur: 0, want: 0},
	}
	for _, tc := range testCases {
		if got := percentChange(CZK(tc.prev), CZK(tc.cur)); !got.Equal(tc.want) {
			t.Errorf("percentChange(%v, %v) = %v, want %v", tc.prev, tc.cur, got, tc.want)
		}
	}
}
