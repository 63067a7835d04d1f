package domain

import "github.com/shopspring/decimal"

// DateLayout is the ISO date format used for journal entry dates.
const DateLayout = "2006-01-02"

// JournalLine is a single debit-or-credit amount against one account.
type JournalLine struct {
	AccountID   int64           `json:"accountId"`
	AccountCode string          `json:"accountCode"`           // Denormalized for display and import resilience
	AccountName string          `json:"accountName,omitempty"` // Resolved on read, never stored
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Net returns debit minus credit for the line.
func (l JournalLine) Net() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// JournalEntry is a balanced set of journal lines posted together.
// Entries are immutable once appended to the ledger.
type JournalEntry struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"` // ISO date (yyyy-mm-dd)
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"totalAmount"` // Sum of debits (equal to sum of credits)
	Details     []JournalLine   `json:"details"`
}

// Totals returns the sum of debits and the sum of credits across all lines.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range e.Details {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// OrphanLine records a posted line whose account is not in the chart of accounts.
// Such lines contribute nothing to any balance.
type OrphanLine struct {
	EntryID     int64           `json:"entryId"`
	AccountID   int64           `json:"accountId"`
	AccountCode string          `json:"accountCode"`
	Net         decimal.Decimal `json:"net"`
}
