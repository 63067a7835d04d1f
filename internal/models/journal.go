package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row of the journal_entries table.
type JournalEntry struct {
	ID          int64           `db:"id"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

// JournalLine represents a row of the journal_lines table.
// AccountID is deliberately not a foreign key: lines outlive their accounts.
type JournalLine struct {
	ID          int64           `db:"id"`
	EntryID     int64           `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountID   int64           `db:"account_id"`
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
