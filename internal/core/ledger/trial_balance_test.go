package ledger_test

import (
	"testing"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrialBalance_CashAndCapital(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, Code: "111", Name: "Cash"},
		{ID: 2, Code: "31", Name: "Capital"},
	}
	entries := []domain.JournalEntry{entry(1, debit(1, "1000"), credit(2, "1000"))}

	tb, err := ledger.BuildTrialBalance(accounts, entries)

	require.NoError(t, err)
	require.Len(t, tb.Rows, 2)
	byCode := map[string]domain.TrialBalanceRow{}
	for _, r := range tb.Rows {
		byCode[r.AccountCode] = r
	}
	assert.Equal(t, "1000.00", byCode["111"].Debit.StringFixed(2))
	assert.True(t, byCode["111"].Credit.IsZero())
	assert.Equal(t, "1000.00", byCode["31"].Credit.StringFixed(2))
	assert.True(t, byCode["31"].Debit.IsZero())
	assert.True(t, tb.Balanced)
	assert.Empty(t, tb.Warning)
	assertAmount(t, "0", tb.Difference)
}

func TestBuildTrialBalance_NumericCodeOrder(t *testing.T) {
	tb, err := ledger.BuildTrialBalance(ledger.DefaultChart(), tradingLedger())
	require.NoError(t, err)

	got := make([]string, 0, len(tb.Rows))
	for _, r := range tb.Rows {
		got = append(got, r.AccountCode)
	}
	assert.Equal(t, []string{"41", "52", "211", "511", "11311", "21211", "31111", "111111", "114111"}, got)
	assertAmount(t, "19750", tb.GrandDebit)
	assertAmount(t, "19750", tb.GrandCredit)
	assert.True(t, tb.Balanced)
}

func TestBuildTrialBalance_NonNumericCodesLast(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, Code: "X1", Name: "odd"},
		{ID: 2, Code: "2", Name: "two"},
		{ID: 3, Code: "10", Name: "ten"},
	}
	entries := []domain.JournalEntry{entry(1, debit(1, "5"), debit(3, "5"), credit(2, "10"))}

	tb, err := ledger.BuildTrialBalance(accounts, entries)

	require.NoError(t, err)
	require.Len(t, tb.Rows, 3)
	assert.Equal(t, "2", tb.Rows[0].AccountCode)
	assert.Equal(t, "10", tb.Rows[1].AccountCode)
	assert.Equal(t, "X1", tb.Rows[2].AccountCode)
}

func TestBuildTrialBalance_OmitsZeroAndParentRollups(t *testing.T) {
	tb, err := ledger.BuildTrialBalance(ledger.DefaultChart(), []domain.JournalEntry{
		entry(1, debit(13, "100"), credit(13, "100")),
		entry(2, debit(13, "50"), credit(22, "50")),
	})
	require.NoError(t, err)

	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "31111", tb.Rows[0].AccountCode)
	assert.Equal(t, "111111", tb.Rows[1].AccountCode)
}

func TestBuildTrialBalance_Unbalanced(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, Code: "111", Name: "Cash"},
		{ID: 2, Code: "31", Name: "Capital"},
	}
	// Imported history may be out of balance; the report must surface it.
	entries := []domain.JournalEntry{entry(1, debit(1, "1000"), credit(2, "997.455"))}

	tb, err := ledger.BuildTrialBalance(accounts, entries)

	require.NoError(t, err)
	assert.False(t, tb.Balanced)
	assert.Equal(t, "2.55", tb.Difference.StringFixed(2))
	assert.Contains(t, tb.Warning, "Unbalanced")
	assert.Contains(t, tb.Warning, "2.55")
}

func TestBuildTrialBalance_SmallDifferenceStillBalanced(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, Code: "111", Name: "Cash"},
		{ID: 2, Code: "31", Name: "Capital"},
	}
	entries := []domain.JournalEntry{entry(1, debit(1, "1000"), credit(2, "999.5"))}

	tb, err := ledger.BuildTrialBalance(accounts, entries)

	require.NoError(t, err)
	assert.True(t, tb.Balanced)
	assertAmount(t, "0.5", tb.Difference)
}

func TestBuildTrialBalance_ReportsOrphans(t *testing.T) {
	accounts := []domain.Account{{ID: 1, Code: "111"}, {ID: 2, Code: "31"}}
	entries := []domain.JournalEntry{
		entry(1, debit(1, "10"), credit(2, "10")),
		entry(2, debit(999, "10"), credit(2, "10")),
	}

	tb, err := ledger.BuildTrialBalance(accounts, entries)

	require.NoError(t, err)
	assert.Len(t, tb.OrphanLines, 1)
	assert.False(t, tb.Balanced, "orphaned debit leaves the known accounts out of balance")
}
