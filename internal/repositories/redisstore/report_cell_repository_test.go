package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/repositories/redisstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when TEST_REDIS_URL is set.
func TestReportCellRepository_Redis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := redisstore.NewClient(ctx, url)
	require.NoError(t, err)
	defer client.Close()

	key := "test:report_cells:" + uuid.NewString()
	defer client.Del(ctx, key)
	repo := redisstore.NewReportCellRepository(client, key)

	_, err = repo.FindReportCell(ctx, "note_8")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SaveReportCell(ctx, "note_8", "Note 3"))
	require.NoError(t, repo.SaveReportCell(ctx, "note_8", "Note 4"))
	require.NoError(t, repo.SaveReportCell(ctx, "prev_inc_net", "1,000.00"))

	cell, err := repo.FindReportCell(ctx, "note_8")
	require.NoError(t, err)
	assert.Equal(t, "Note 4", cell.Value)

	all, err := repo.FetchAllReportCells(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"note_8": "Note 4", "prev_inc_net": "1,000.00"}, all)
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := redisstore.NewClient(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
