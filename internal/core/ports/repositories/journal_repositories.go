package repositories

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// JournalReader defines read operations for the ledger
type JournalReader interface {
	// FetchAllJournalEntries returns every posted entry with its lines, oldest first.
	FetchAllJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for the ledger.
// Entries are append-only: there is no update or delete.
type JournalWriter interface {
	// AppendJournalEntry stores an already validated entry atomically and returns its assigned id.
	AppendJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx is implemented by journal stores backed by SQL transactions
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
