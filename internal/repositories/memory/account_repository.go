package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
)

// AccountRepository stores the chart of accounts in insertion order.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
	byCode   map[string]int64
	byID     map[int64]int // index into accounts
	nextID   int64
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byCode: make(map[string]int64),
		byID:   make(map[int64]int),
		nextID: 1,
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) FetchAllAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc := r.accounts[idx]
	return &acc, nil
}

func (r *AccountRepository) AddAccount(ctx context.Context, account domain.Account) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byCode[account.Code]; dup {
		return 0, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, account.Code)
	}
	account.ID = r.nextID
	r.insert(account)
	return account.ID, nil
}

// SeedAccounts keeps the given ids. Later AddAccount calls continue after the highest one.
func (r *AccountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.accounts) > 0 {
		return 0, nil
	}
	for _, acc := range accounts {
		if _, dup := r.byCode[acc.Code]; dup {
			r.reset()
			return 0, fmt.Errorf("%w: account code %s appears twice", apperrors.ErrDuplicate, acc.Code)
		}
		if _, dup := r.byID[acc.ID]; dup || acc.ID <= 0 {
			r.reset()
			return 0, fmt.Errorf("%w: invalid or repeated account id %d", apperrors.ErrValidation, acc.ID)
		}
		r.insert(acc)
	}
	return len(accounts), nil
}

func (r *AccountRepository) insert(acc domain.Account) {
	r.byID[acc.ID] = len(r.accounts)
	r.byCode[acc.Code] = acc.ID
	r.accounts = append(r.accounts, acc)
	if acc.ID >= r.nextID {
		r.nextID = acc.ID + 1
	}
}

func (r *AccountRepository) reset() {
	r.accounts = nil
	r.byCode = make(map[string]int64)
	r.byID = make(map[int64]int)
	r.nextID = 1
}
