// Package ledger implements the pure ledger and reporting engine: the chart of
// accounts tree, posting validation, balance aggregation and the derivation of
// trial balances, income statements and balance sheets.
//
// Nothing in this package performs I/O or keeps state between calls. Every
// builder works on the snapshot it is given and never mutates it.
package ledger

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
)

// Tree is an arena representation of the chart of accounts.
// Accounts are addressed by id; the children index is derived once on construction.
type Tree struct {
	order    []int64
	byID     map[int64]domain.Account
	children map[int64][]int64
	byCode   map[string]int64
}

// NewTree builds a tree from a snapshot of accounts. The input slice is copied.
// When two accounts share an id the first one wins; when two share a code,
// FindByCode returns the first in input order.
func NewTree(accounts []domain.Account) *Tree {
	t := &Tree{
		order:    make([]int64, 0, len(accounts)),
		byID:     make(map[int64]domain.Account, len(accounts)),
		children: make(map[int64][]int64),
		byCode:   make(map[string]int64, len(accounts)),
	}
	for _, acc := range accounts {
		if _, dup := t.byID[acc.ID]; dup {
			continue
		}
		t.order = append(t.order, acc.ID)
		t.byID[acc.ID] = acc
		t.children[acc.ParentID] = append(t.children[acc.ParentID], acc.ID)
		if _, seen := t.byCode[acc.Code]; !seen {
			t.byCode[acc.Code] = acc.ID
		}
	}
	return t
}

// Len returns the number of accounts in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Account returns the account with the given id.
func (t *Tree) Account(id int64) (domain.Account, bool) {
	acc, ok := t.byID[id]
	return acc, ok
}

// Has reports whether an account with the given id exists.
func (t *Tree) Has(id int64) bool {
	_, ok := t.byID[id]
	return ok
}

// Accounts returns all accounts in input order.
func (t *Tree) Accounts() []domain.Account {
	out := make([]domain.Account, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// ChildrenOf returns the accounts whose ParentID equals id, in input order.
// ChildrenOf(domain.RootParentID) returns the top-level accounts.
func (t *Tree) ChildrenOf(id int64) []domain.Account {
	ids := t.children[id]
	out := make([]domain.Account, 0, len(ids))
	for _, childID := range ids {
		out = append(out, t.byID[childID])
	}
	return out
}

func (t *Tree) childIDs(id int64) []int64 {
	return t.children[id]
}

// Roots returns the top-level accounts of the forest.
func (t *Tree) Roots() []domain.Account {
	return t.ChildrenOf(domain.RootParentID)
}

// IsLeaf reports whether no account has id as its parent.
func (t *Tree) IsLeaf(id int64) bool {
	return len(t.children[id]) == 0
}

// Leaves returns the accounts without children, in input order.
// These are the accounts postings are normally made against.
func (t *Tree) Leaves() []domain.Account {
	var out []domain.Account
	for _, id := range t.order {
		if t.IsLeaf(id) {
			out = append(out, t.byID[id])
		}
	}
	return out
}

// AncestorsOf returns the chain of ancestors of id, nearest first, ending at
// the top-level account. The account itself is not included. A parent id
// that does not resolve ends the chain. The walk is bounded by Len() so a
// malformed cycle cannot loop forever.
func (t *Tree) AncestorsOf(id int64) []domain.Account {
	acc, ok := t.byID[id]
	if !ok {
		return nil
	}
	var out []domain.Account
	parentID := acc.ParentID
	for steps := 0; parentID != domain.RootParentID && steps < len(t.order); steps++ {
		parent, ok := t.byID[parentID]
		if !ok {
			break
		}
		out = append(out, parent)
		parentID = parent.ParentID
	}
	return out
}

// FindByCode returns the first account (in input order) with the given code.
func (t *Tree) FindByCode(code string) (domain.Account, bool) {
	id, ok := t.byCode[code]
	if !ok {
		return domain.Account{}, false
	}
	return t.byID[id], true
}

// Node is an account together with its subtree, used for tree rendering.
type Node struct {
	Account  domain.Account `json:"account"`
	Leaf     bool           `json:"leaf"`
	Children []Node         `json:"children,omitempty"`
}

// Nested returns the forest as nested nodes starting at the top-level accounts.
// Accounts unreachable from the root (dangling parents or cycles) are omitted.
func (t *Tree) Nested() []Node {
	visited := make(map[int64]bool, len(t.order))
	return t.nest(domain.RootParentID, visited)
}

func (t *Tree) nest(parentID int64, visited map[int64]bool) []Node {
	ids := t.children[parentID]
	if len(ids) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		if visited[id] {
			continue
		}
		visited[id] = true
		nodes = append(nodes, Node{
			Account:  t.byID[id],
			Leaf:     t.IsLeaf(id),
			Children: t.nest(id, visited),
		})
	}
	return nodes
}
