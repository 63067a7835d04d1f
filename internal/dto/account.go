package dto

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code     string `json:"code" binding:"required,numeric,max=20"`
	Name     string `json:"name" binding:"required,max=200"`
	ParentID int64  `json:"parentId" binding:"min=0"` // 0 for a top-level account
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	ParentID int64  `json:"parentId"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Leaf bool `form:"leaf"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountNodeResponse is one node of the nested chart of accounts.
type AccountNodeResponse struct {
	AccountResponse
	Leaf     bool                  `json:"leaf"`
	Children []AccountNodeResponse `json:"children,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       acc.ID,
		Code:     acc.Code,
		Name:     acc.Name,
		ParentID: acc.ParentID,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountTreeResponse converts nested ledger nodes to their DTO form.
func ToAccountTreeResponse(nodes []ledger.Node) []AccountNodeResponse {
	res := make([]AccountNodeResponse, len(nodes))
	for i, n := range nodes {
		res[i] = AccountNodeResponse{
			AccountResponse: ToAccountResponse(&n.Account),
			Leaf:            n.Leaf,
		}
		if len(n.Children) > 0 {
			res[i].Children = ToAccountTreeResponse(n.Children)
		}
	}
	return res
}
