package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
)

// DeletedAccountName is shown for journal lines whose account no longer exists.
const DeletedAccountName = "(deleted account)"

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service.
// Accounts are read to resolve ids, codes and names; they are never written.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) loadTree(ctx context.Context) (*ledger.Tree, error) {
	accounts, err := s.accountRepo.FetchAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return ledger.NewTree(accounts), nil
}

// PostJournalEntry validates the request, checks that every line targets an
// existing account and appends the normalized entry.
func (s *journalService) PostJournalEntry(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error) {
	entry, err := ledger.ValidateEntry(req.ToDomainJournalEntry())
	if err != nil {
		s.LogWarn(ctx, "Journal entry rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}
	for i, line := range entry.Details {
		acc, ok := tree.Account(line.AccountID)
		if !ok {
			return nil, fmt.Errorf("%w: account %d does not exist", apperrors.ErrValidation, line.AccountID)
		}
		entry.Details[i].AccountCode = acc.Code
	}

	return s.append(ctx, entry)
}

func (s *journalService) append(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	id, err := s.journalRepo.AppendJournalEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append journal entry", slog.String("date", entry.Date))
		return nil, fmt.Errorf("failed to append journal entry: %w", err)
	}
	entry.ID = id

	s.LogInfo(ctx, "Journal entry posted",
		slog.Int64("journal_id", id),
		slog.Int("lines", len(entry.Details)),
		slog.String("total", entry.TotalAmount.StringFixed(2)))
	return &entry, nil
}

// ListJournalEntries returns every entry newest first. Line account names are
// resolved from the current chart; lines of removed accounts keep their stored
// code and show DeletedAccountName.
func (s *journalService) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.FetchAllJournalEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch journal entries")
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		lines := make([]domain.JournalLine, len(e.Details))
		for j, line := range e.Details {
			if acc, ok := tree.Account(line.AccountID); ok {
				line.AccountCode = acc.Code
				line.AccountName = acc.Name
			} else {
				line.AccountName = DeletedAccountName
			}
			lines[j] = line
		}
		e.Details = lines
		out[len(entries)-1-i] = e
	}

	s.LogDebug(ctx, "Journal entries listed", slog.Int("count", len(out)))
	return out, nil
}

// ImportJournalEntries posts candidates whose lines carry account codes
// instead of ids. Each candidate's ID is the entry number from the source
// file and is only used for reporting. Candidates are validated and appended
// one by one; a rejected candidate does not stop the import.
func (s *journalService) ImportJournalEntries(ctx context.Context, candidates []domain.JournalEntry) (*dto.ImportJournalsResponse, error) {
	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.ImportJournalsResponse{
		Rejected:     []dto.ImportRejection{},
		SkippedLines: []dto.SkippedLine{},
	}
	for _, candidate := range candidates {
		lines := make([]domain.JournalLine, 0, len(candidate.Details))
		for _, line := range candidate.Details {
			code := strings.TrimSpace(line.AccountCode)
			acc, ok := tree.FindByCode(code)
			if !ok {
				res.SkippedLines = append(res.SkippedLines, dto.SkippedLine{EntryNumber: candidate.ID, AccountCode: code})
				continue
			}
			line.AccountID = acc.ID
			line.AccountCode = acc.Code
			lines = append(lines, line)
		}
		candidate.Details = lines

		entry, err := ledger.ValidateEntry(candidate)
		if err != nil {
			res.Rejected = append(res.Rejected, dto.ImportRejection{EntryNumber: candidate.ID, Reason: err.Error()})
			continue
		}
		entry.ID = 0
		if _, err := s.append(ctx, entry); err != nil {
			return res, err
		}
		res.Imported++
	}

	if len(res.Rejected) > 0 || len(res.SkippedLines) > 0 {
		s.LogWarn(ctx, "Journal import finished with problems",
			slog.Int("imported", res.Imported),
			slog.Int("rejected", len(res.Rejected)),
			slog.Int("skipped_lines", len(res.SkippedLines)))
	} else {
		s.LogInfo(ctx, "Journal import finished", slog.Int("imported", res.Imported))
	}
	return res, nil
}
