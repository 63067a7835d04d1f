package repositories

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FetchAllAccounts returns every account in insertion order.
	FetchAllAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByID returns apperrors.ErrNotFound when the id is unknown.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// AddAccount stores a new account and returns its assigned id.
	// The ID field of the argument is ignored. A duplicate code fails with apperrors.ErrDuplicate.
	AddAccount(ctx context.Context, account domain.Account) (int64, error)

	// SeedAccounts stores accounts with their given ids when the store is empty.
	// It returns the number of accounts written, zero when accounts already exist.
	SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
