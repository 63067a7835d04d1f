package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/SscSPs/finstatements/internal/core/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/SscSPs/finstatements/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	n, err := repo.SeedAccounts(ctx, ledger.DefaultChart())
	require.NoError(t, err)
	assert.Equal(t, 35, n)

	n, err = repo.SeedAccounts(ctx, ledger.DefaultChart())
	require.NoError(t, err)
	assert.Zero(t, n, "seeding a non-empty store is a no-op")

	id, err := repo.AddAccount(ctx, domain.Account{ID: 7, Code: "115", Name: "Prepaid", ParentID: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(36), id, "ids continue after the seeded chart")

	_, err = repo.AddAccount(ctx, domain.Account{Code: "115", Name: "Again"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	acc, err := repo.FindAccountByID(ctx, 36)
	require.NoError(t, err)
	assert.Equal(t, "Prepaid", acc.Name)

	_, err = repo.FindAccountByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repo.FetchAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 36)
	all[0].Name = "mutated"
	again, _ := repo.FetchAllAccounts(ctx)
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestAccountRepository_SeedRejectsDuplicateCodes(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, err := repo.SeedAccounts(context.Background(), []domain.Account{
		{ID: 1, Code: "1"}, {ID: 2, Code: "1"},
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	all, _ := repo.FetchAllAccounts(context.Background())
	assert.Empty(t, all)
}

func TestJournalRepository_AppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()
	entry := domain.JournalEntry{Date: "2025-01-01", Description: "x", Details: []domain.JournalLine{
		{AccountID: 1, Debit: decimal.NewFromInt(5)},
		{AccountID: 2, Credit: decimal.NewFromInt(5)},
	}}

	id1, err := repo.AppendJournalEntry(ctx, entry)
	require.NoError(t, err)
	id2, err := repo.AppendJournalEntry(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, []int64{id1, id2})

	entry.Details[0].AccountID = 99
	stored, err := repo.FetchAllJournalEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored[0].Details[0].AccountID, "caller's slice is not retained")
}

func TestReportCellRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewReportCellRepository()

	_, err := repo.FindReportCell(ctx, "note_1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SaveReportCell(ctx, "note_1", "a"))
	require.NoError(t, repo.SaveReportCell(ctx, "note_1", "b"))

	cell, err := repo.FindReportCell(ctx, "note_1")
	require.NoError(t, err)
	assert.Equal(t, "b", cell.Value)

	cells, _ := repo.FetchAllReportCells(ctx)
	cells["note_2"] = "leak"
	_, err = repo.FindReportCell(ctx, "note_2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConcurrentPostingAndReporting(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	container := services.NewServiceContainer(ledger.DefaultReportConfig(2025), *repos)
	_, err := container.Account.SeedDefaultChart(ctx)
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := container.Journal.PostJournalEntry(ctx, dto.CreateJournalRequest{
				Date:        "2025-05-01",
				Description: "cash sale",
				Details: []dto.CreateJournalLineRequest{
					{AccountID: 13, Debit: decimal.NewFromInt(int64(100 + i))},
					{AccountID: 25, Credit: decimal.NewFromInt(int64(100 + i))},
				},
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			bs, err := container.Reporting.BalanceSheet(ctx)
			assert.NoError(t, err)
			assert.True(t, bs.Balanced)
		}()
	}
	wg.Wait()

	is, err := container.Reporting.IncomeStatement(ctx)
	require.NoError(t, err)
	assert.Equal(t, "828.00", is.Revenue.StringFixed(2))

	entries, err := container.Journal.ListJournalEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, writers)
}

func TestOverlayThroughServices(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	container := services.NewServiceContainer(ledger.DefaultReportConfig(2025), *repos)
	_, err := container.Account.SeedDefaultChart(ctx)
	require.NoError(t, err)

	_, err = container.ReportCell.SaveCell(ctx, ledger.NoteKey(ledger.AccountRowID(8)), "Note 4")
	require.NoError(t, err)

	bs, err := container.Reporting.BalanceSheet(ctx)
	require.NoError(t, err)
	var note string
	for _, s := range bs.Sections {
		for _, l := range s.Lines {
			if l.AccountID == 8 {
				note = l.Note
			}
		}
	}
	assert.Equal(t, "Note 4", note)
	assert.True(t, bs.TotalAssets.IsZero())
}
