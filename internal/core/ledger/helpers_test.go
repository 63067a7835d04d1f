package ledger_test

import (
	"testing"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debit(accountID int64, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Debit: dec(amount), Credit: decimal.Zero}
}

func credit(accountID int64, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Debit: decimal.Zero, Credit: dec(amount)}
}

func entry(id int64, lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{ID: id, Date: "2025-01-15", Description: "test entry", Details: lines}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.StringFixed(2), msgAndArgs...)
}

// tradingLedger posts a small year of trading against the default chart:
// capital paid in, stock bought on credit, a sale with VAT, its cost and an expense.
func tradingLedger() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry(1, debit(13, "10000"), credit(22, "10000")),
		entry(2, debit(15, "4000"), credit(30, "4000")),
		entry(3, debit(17, "5750"), credit(25, "5000"), credit(33, "750")),
		entry(4, debit(27, "3000"), credit(15, "3000")),
		entry(5, debit(28, "500"), credit(13, "500")),
	}
}
