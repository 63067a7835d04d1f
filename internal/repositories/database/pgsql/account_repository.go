package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/SscSPs/finstatements/internal/models"
	"github.com/SscSPs/finstatements/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the chart of accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FetchAllAccounts returns every account ordered by id.
func (r *PgxAccountRepository) FetchAllAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT id, code, name, parent_id, created_at FROM accounts ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.ParentID, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// FindAccountByID retrieves a single account.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT id, code, name, parent_id, created_at FROM accounts WHERE id = $1;`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&m.ID, &m.Code, &m.Name, &m.ParentID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find account %d", accountID), err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// AddAccount inserts a new account and returns its generated id.
func (r *PgxAccountRepository) AddAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (code, name, parent_id) VALUES ($1, $2, $3) RETURNING id;`

	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.Code, m.Name, m.ParentID).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return 0, apperrors.NewAppError(500, "failed to insert account "+m.Code, err)
	}
	return id, nil
}

// SeedAccounts bulk-copies accounts with their ids into an empty table and
// moves the id sequence past the highest seeded id.
func (r *PgxAccountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `LOCK TABLE accounts IN EXCLUSIVE MODE;`); err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock accounts table", err)
	}
	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM accounts;`).Scan(&existing); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count accounts", err)
	}
	if existing > 0 {
		return 0, nil
	}

	rows := make([][]any, len(accounts))
	for i, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		rows[i] = []any{m.ID, m.Code, m.Name, m.ParentID}
	}
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"accounts"}, []string{"id", "code", "name", "parent_id"}, pgx.CopyFromRows(rows))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: seeded chart repeats an account code or id", apperrors.ErrDuplicate)
		}
		return 0, apperrors.NewAppError(500, "failed to copy accounts", err)
	}
	if _, err := tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('accounts', 'id'), (SELECT MAX(id) FROM accounts));`); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance account id sequence", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return int(copied), nil
}
