package services

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/SscSPs/finstatements/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// ListAccounts returns all accounts, or only the postable leaves when leafOnly is set.
	ListAccounts(ctx context.Context, leafOnly bool) ([]domain.Account, error)

	// GetAccountTree returns the chart as nested nodes from the top-level accounts down.
	GetAccountTree(ctx context.Context) ([]ledger.Node, error)

	// GetAncestors returns the parent chain of an account, nearest first.
	GetAncestors(ctx context.Context, accountID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount adds an account under an existing parent (or at the top level).
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// SeedDefaultChart writes the default chart into an empty store.
	SeedDefaultChart(ctx context.Context) (int, error)

	// ImportAccounts writes an imported chart, keeping its ids, into an empty store.
	ImportAccounts(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
