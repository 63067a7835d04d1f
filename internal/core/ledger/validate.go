package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Validation failure kinds. A *ValidationError matches its kind and
// apperrors.ErrValidation with errors.Is.
var (
	ErrUnbalanced     = errors.New("journal entry debits and credits do not balance")
	ErrTooFewLines    = errors.New("journal entry must have at least two non-zero lines")
	ErrAmbiguousLine  = errors.New("journal line cannot be both debit and credit")
	ErrMissingFields  = errors.New("journal entry date and description are required")
	ErrInvalidDate    = errors.New("journal entry date must be an ISO date (yyyy-mm-dd)")
	ErrNegativeAmount = errors.New("journal line amounts cannot be negative")
)

// PostingTolerance is the largest debit/credit difference an entry may carry.
var PostingTolerance = decimal.RequireFromString("0.01")

// MinEntryLines is the minimum number of non-zero lines in an entry.
const MinEntryLines = 2

// ValidationError reports why a candidate entry was rejected before posting.
type ValidationError struct {
	Kind   error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

// Unwrap exposes both the specific kind and the generic validation error.
func (e *ValidationError) Unwrap() []error {
	return []error{e.Kind, apperrors.ErrValidation}
}

func invalid(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// ValidateEntry checks a candidate journal entry and returns its normalized form.
//
// Lines with neither a debit nor a credit are dropped, the description is
// trimmed, and TotalAmount is set to the sum of debits. The candidate itself
// is not modified.
func ValidateEntry(candidate domain.JournalEntry) (domain.JournalEntry, error) {
	date := strings.TrimSpace(candidate.Date)
	description := strings.TrimSpace(candidate.Description)
	if date == "" || description == "" {
		return domain.JournalEntry{}, &ValidationError{Kind: ErrMissingFields}
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.JournalEntry{}, invalid(ErrInvalidDate, "got %q", date)
	}

	lines := make([]domain.JournalLine, 0, len(candidate.Details))
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for i, line := range candidate.Details {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return domain.JournalEntry{}, invalid(ErrNegativeAmount, "line %d", i+1)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			continue
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return domain.JournalEntry{}, invalid(ErrAmbiguousLine, "line %d (account %d)", i+1, line.AccountID)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
		lines = append(lines, line)
	}

	if len(lines) < MinEntryLines {
		return domain.JournalEntry{}, invalid(ErrTooFewLines, "got %d", len(lines))
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(PostingTolerance) {
		return domain.JournalEntry{}, invalid(ErrUnbalanced, "debits %s, credits %s",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2))
	}

	return domain.JournalEntry{
		ID:          candidate.ID,
		Date:        date,
		Description: description,
		TotalAmount: totalDebit,
		Details:     lines,
	}, nil
}
