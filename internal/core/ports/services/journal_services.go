package services

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/dto"
)

// JournalReaderSvc defines read operations for the ledger
type JournalReaderSvc interface {
	// ListJournalEntries returns every entry newest first with account names resolved.
	ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for the ledger
type JournalWriterSvc interface {
	// PostJournalEntry validates and appends a new entry.
	PostJournalEntry(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error)

	// ImportJournalEntries resolves account codes, validates and appends each
	// candidate independently. Lines with unknown codes are skipped.
	ImportJournalEntries(ctx context.Context, candidates []domain.JournalEntry) (*dto.ImportJournalsResponse, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
