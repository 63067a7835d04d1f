package pgsql

import (
	"context"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/SscSPs/finstatements/internal/models"
	"github.com/SscSPs/finstatements/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// AppendJournalEntry inserts the entry header and all of its lines in one transaction.
func (r *PgxJournalRepository) AppendJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	header, lines, err := mapping.ToModelJournalEntry(entry)
	if err != nil {
		return 0, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	// Ignored once committed
	defer r.Rollback(ctx, tx)

	var entryID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO journal_entries (entry_date, description, total_amount) VALUES ($1, $2, $3) RETURNING id;`,
		header.EntryDate, header.Description, header.TotalAmount,
	).Scan(&entryID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert journal entry", err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (entry_id, line_no, account_id, account_code, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, l := range lines {
		batch.Queue(lineQuery, entryID, l.LineNo, l.AccountID, l.AccountCode, l.Debit, l.Credit)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert journal lines", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return entryID, nil
}

// FetchAllJournalEntries loads every entry with its lines from a single snapshot, oldest first.
func (r *PgxJournalRepository) FetchAllJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	tx, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	headers, err := r.fetchHeaders(ctx, tx)
	if err != nil {
		return nil, err
	}
	linesByEntry, err := r.fetchLines(ctx, tx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, linesByEntry[h.ID])
	}
	return entries, nil
}

func (r *PgxJournalRepository) fetchHeaders(ctx context.Context, tx pgx.Tx) ([]models.JournalEntry, error) {
	rows, err := tx.Query(ctx, `SELECT id, entry_date, description, total_amount, created_at FROM journal_entries ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	headers := []models.JournalEntry{}
	for rows.Next() {
		var h models.JournalEntry
		if err := rows.Scan(&h.ID, &h.EntryDate, &h.Description, &h.TotalAmount, &h.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return headers, nil
}

func (r *PgxJournalRepository) fetchLines(ctx context.Context, tx pgx.Tx) (map[int64][]models.JournalLine, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, entry_id, line_no, account_id, account_code, debit, credit
		FROM journal_lines
		ORDER BY entry_id, line_no;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	byEntry := make(map[int64][]models.JournalLine)
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.ID, &l.EntryID, &l.LineNo, &l.AccountID, &l.AccountCode, &l.Debit, &l.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return byEntry, nil
}
