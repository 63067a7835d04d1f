package ledger_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntry_Failures(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.JournalEntry
		wantErr error
	}{
		{
			name:    "off by two cents",
			entry:   entry(0, debit(1, "100"), credit(2, "99.98")),
			wantErr: ledger.ErrUnbalanced,
		},
		{
			name:    "single line",
			entry:   entry(0, debit(1, "100")),
			wantErr: ledger.ErrTooFewLines,
		},
		{
			name:    "zero lines do not count",
			entry:   entry(0, debit(1, "100"), credit(2, "0"), domain.JournalLine{AccountID: 3}),
			wantErr: ledger.ErrTooFewLines,
		},
		{
			name: "both sides on one line",
			entry: entry(0,
				domain.JournalLine{AccountID: 1, Debit: dec("50"), Credit: dec("50")},
				debit(2, "10"), credit(3, "10")),
			wantErr: ledger.ErrAmbiguousLine,
		},
		{
			name:    "missing description",
			entry:   domain.JournalEntry{Date: "2025-01-01", Description: "  ", Details: []domain.JournalLine{debit(1, "1"), credit(2, "1")}},
			wantErr: ledger.ErrMissingFields,
		},
		{
			name:    "missing date",
			entry:   domain.JournalEntry{Description: "rent", Details: []domain.JournalLine{debit(1, "1"), credit(2, "1")}},
			wantErr: ledger.ErrMissingFields,
		},
		{
			name:    "missing fields win over imbalance",
			entry:   domain.JournalEntry{Details: []domain.JournalLine{debit(1, "5")}},
			wantErr: ledger.ErrMissingFields,
		},
		{
			name:    "date not ISO",
			entry:   domain.JournalEntry{Date: "15/01/2025", Description: "rent", Details: []domain.JournalLine{debit(1, "1"), credit(2, "1")}},
			wantErr: ledger.ErrInvalidDate,
		},
		{
			name:    "negative amount",
			entry:   entry(0, debit(1, "-10"), credit(2, "-10")),
			wantErr: ledger.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.ValidateEntry(tt.entry)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			var vErr *ledger.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantErr, vErr.Kind)
		})
	}
}

func TestValidateEntry_WithinTolerance(t *testing.T) {
	got, err := ledger.ValidateEntry(entry(0, debit(1, "100"), credit(2, "99.99")))

	require.NoError(t, err)
	assertAmount(t, "100", got.TotalAmount)
}

func TestValidateEntry_Normalizes(t *testing.T) {
	candidate := domain.JournalEntry{
		Date:        " 2025-03-01 ",
		Description: "  sale  ",
		Details: []domain.JournalLine{
			debit(1, "60"),
			debit(2, "40"),
			{AccountID: 9, Debit: decimal.Zero, Credit: decimal.Zero},
			credit(3, "100"),
		},
	}

	got, err := ledger.ValidateEntry(candidate)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", got.Date)
	assert.Equal(t, "sale", got.Description)
	assert.Len(t, got.Details, 3)
	assertAmount(t, "100", got.TotalAmount)
	assert.Len(t, candidate.Details, 4, "candidate must not be modified")
}

func TestValidateEntry_AcceptedEntriesBalance(t *testing.T) {
	for _, e := range tradingLedger() {
		got, err := ledger.ValidateEntry(e)
		require.NoError(t, err)

		d, c := got.Totals()
		assert.True(t, d.Sub(c).Abs().LessThanOrEqual(ledger.PostingTolerance))
		assert.True(t, got.TotalAmount.Equal(d))
	}
}
