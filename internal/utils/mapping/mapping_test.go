package mapping_test

import (
	"testing"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountMapping_TopLevelParentIsNull(t *testing.T) {
	top := mapping.ToModelAccount(domain.Account{ID: 1, Code: "1", Name: "Assets"})
	assert.Nil(t, top.ParentID)

	child := mapping.ToModelAccount(domain.Account{ID: 6, Code: "11", Name: "Current", ParentID: 1})
	require.NotNil(t, child.ParentID)
	assert.Equal(t, int64(1), *child.ParentID)

	assert.Equal(t, domain.RootParentID, mapping.ToDomainAccount(top).ParentID)
	assert.Equal(t, int64(1), mapping.ToDomainAccount(child).ParentID)
}

func TestJournalMapping(t *testing.T) {
	entry := domain.JournalEntry{
		ID:          3,
		Date:        "2025-04-30",
		Description: "Rent",
		TotalAmount: decimal.NewFromInt(500),
		Details: []domain.JournalLine{
			{AccountID: 28, AccountCode: "52", Debit: decimal.NewFromInt(500)},
			{AccountID: 13, AccountCode: "111111", Credit: decimal.NewFromInt(500)},
		},
	}

	header, lines, err := mapping.ToModelJournalEntry(entry)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].LineNo)
	assert.Equal(t, 2, lines[1].LineNo)
	assert.Equal(t, 2025, header.EntryDate.Year())

	back := mapping.ToDomainJournalEntry(header, lines)
	assert.Equal(t, entry.Date, back.Date)
	assert.Equal(t, entry.Details[1].AccountCode, back.Details[1].AccountCode)

	_, _, err = mapping.ToModelJournalEntry(domain.JournalEntry{Date: "30/04/2025"})
	assert.Error(t, err)
}
