package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
)

// JournalRepository is an append-only in-memory ledger.
type JournalRepository struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

func NewJournalRepository() *JournalRepository {
	return &JournalRepository{}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) FetchAllJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.JournalEntry, len(r.entries))
	for i, e := range r.entries {
		out[i] = cloneEntry(e)
	}
	return out, nil
}

func (r *JournalRepository) AppendJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry = cloneEntry(entry)
	entry.ID = int64(len(r.entries) + 1)
	for i := range entry.Details {
		entry.Details[i].AccountName = ""
	}
	r.entries = append(r.entries, entry)
	return entry.ID, nil
}

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(e.Details))
	copy(lines, e.Details)
	e.Details = lines
	return e
}
