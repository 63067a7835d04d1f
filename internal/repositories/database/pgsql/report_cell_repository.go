package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportCellRepository struct {
	BaseRepository
}

func newPgxReportCellRepository(pool *pgxpool.Pool) *PgxReportCellRepository {
	return &PgxReportCellRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportCellRepositoryFacade = (*PgxReportCellRepository)(nil)

func (r *PgxReportCellRepository) FetchAllReportCells(ctx context.Context) (map[string]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, value FROM report_cells;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query report cells", err)
	}
	defer rows.Close()

	cells := make(map[string]string)
	for rows.Next() {
		var id, value string
		if err := rows.Scan(&id, &value); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan report cell row", err)
		}
		cells[id] = value
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating report cell rows", err)
	}
	return cells, nil
}

func (r *PgxReportCellRepository) FindReportCell(ctx context.Context, id string) (*domain.ReportCell, error) {
	cell := domain.ReportCell{ID: id}
	err := r.Pool.QueryRow(ctx, `SELECT value FROM report_cells WHERE id = $1;`, id).Scan(&cell.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find report cell "+id, err)
	}
	return &cell, nil
}

// SaveReportCell upserts the cell; concurrent writers to the same id resolve last-write-wins.
func (r *PgxReportCellRepository) SaveReportCell(ctx context.Context, id, value string) error {
	query := `
		INSERT INTO report_cells (id, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, id, value); err != nil {
		return apperrors.NewAppError(500, "failed to save report cell "+id, err)
	}
	return nil
}
