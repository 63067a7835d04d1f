package pgsql_test

import (
	"io"
	"testing"

	"github.com/SscSPs/finstatements/internal/repositories/database/pgsql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource_EmbedsOrderedMigrations(t *testing.T) {
	src, err := pgsql.MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	up, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Equal(t, "create_ledger_tables", identifier)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS journal_lines")
}
