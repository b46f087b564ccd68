package crowdfolio

import (
	"testing"

	"github.com/etnz/crowdfolio/date"
)

// CZK is a helper for tests to create money from constants.
func CZK(v float64) Money { return M(v) }

// tx is a helper for tests to create a transaction dated with an ISO date.
func tx(on string, kind Kind, amount float64, project string) Transaction {
	return Transaction{
		Date:    date.MustParse(on),
		Kind:    kind,
		Label:   kind.Label(),
		Amount:  CZK(amount),
		Project: project,
	}
}

// assertMoney fails the test when got is not want.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Equal(CZK(want)) {
		t.Errorf("%s = %s, want %v", name, got.Decimal(), want)
	}
}
