package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service backed by the given repository
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) loadTree(ctx context.Context) (*ledger.Tree, error) {
	accounts, err := s.accountRepo.FetchAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return ledger.NewTree(accounts), nil
}

// CreateAccount adds an account under an existing parent, or at the top level when ParentID is zero.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := domain.Account{
		Code:     strings.TrimSpace(req.Code),
		Name:     strings.TrimSpace(req.Name),
		ParentID: req.ParentID,
	}
	if account.Code == "" || account.Name == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}

	if !account.IsTopLevel() {
		if _, err := s.accountRepo.FindAccountByID(ctx, account.ParentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %d does not exist", apperrors.ErrValidation, account.ParentID)
			}
			s.LogError(ctx, err, "Failed to look up parent account", slog.Int64("parent_id", account.ParentID))
			return nil, fmt.Errorf("failed to look up parent account: %w", err)
		}
	}

	id, err := s.accountRepo.AddAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", account.Code))
		}
		return nil, err
	}
	account.ID = id

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_id", id),
		slog.String("code", account.Code))
	return &account, nil
}

// ListAccounts returns the chart in insertion order, or just its leaves.
func (s *accountService) ListAccounts(ctx context.Context, leafOnly bool) ([]domain.Account, error) {
	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}
	if leafOnly {
		return tree.Leaves(), nil
	}
	return tree.Accounts(), nil
}

func (s *accountService) GetAccountTree(ctx context.Context) ([]ledger.Node, error) {
	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Nested(), nil
}

func (s *accountService) GetAncestors(ctx context.Context, accountID int64) ([]domain.Account, error) {
	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}
	if !tree.Has(accountID) {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}
	return tree.AncestorsOf(accountID), nil
}

// SeedDefaultChart writes the default chart of accounts when the store is empty.
func (s *accountService) SeedDefaultChart(ctx context.Context) (int, error) {
	return s.seed(ctx, ledger.DefaultChart(), "default chart")
}

// ImportAccounts writes an imported chart. The parent graph must be acyclic.
func (s *accountService) ImportAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	if _, err := ledger.Aggregate(ledger.NewTree(accounts), nil); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.seed(ctx, accounts, "imported chart")
}

func (s *accountService) seed(ctx context.Context, accounts []domain.Account, source string) (int, error) {
	n, err := s.accountRepo.SeedAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed accounts", slog.String("source", source))
		return 0, fmt.Errorf("failed to seed accounts: %w", err)
	}
	if n == 0 {
		s.LogInfo(ctx, "Chart of accounts already present, nothing seeded", slog.String("source", source))
		return 0, nil
	}
	s.LogInfo(ctx, "Chart of accounts seeded", slog.String("source", source), slog.Int("count", n))
	return n, nil
}
