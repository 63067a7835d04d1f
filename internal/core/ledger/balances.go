package ledger

import (
	"errors"
	"fmt"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrCyclicAccountGraph is returned when the parent links of the chart form a cycle.
var ErrCyclicAccountGraph = errors.New("account parent graph contains a cycle")

// Balances holds the raw and rolled-up balances for one snapshot.
// Balances are signed debit minus credit; statements apply sign conventions.
type Balances struct {
	tree    *Tree
	raw     map[int64]decimal.Decimal
	rollup  map[int64]decimal.Decimal
	orphans []domain.OrphanLine
}

// Aggregate computes raw and rollup balances for every account in tree.
//
// Lines referencing an account id unknown to the tree are ignored and
// recorded as orphans. Rollups are computed children-first and memoized; a
// parent cycle fails with ErrCyclicAccountGraph.
func Aggregate(tree *Tree, entries []domain.JournalEntry) (*Balances, error) {
	b := &Balances{
		tree:   tree,
		raw:    make(map[int64]decimal.Decimal, tree.Len()),
		rollup: make(map[int64]decimal.Decimal, tree.Len()),
	}
	for _, id := range tree.order {
		b.raw[id] = decimal.Zero
	}

	for _, entry := range entries {
		for _, line := range entry.Details {
			current, known := b.raw[line.AccountID]
			if !known {
				b.orphans = append(b.orphans, domain.OrphanLine{
					EntryID:     entry.ID,
					AccountID:   line.AccountID,
					AccountCode: line.AccountCode,
					Net:         line.Net(),
				})
				continue
			}
			b.raw[line.AccountID] = current.Add(line.Net())
		}
	}

	onStack := make(map[int64]bool, tree.Len())
	for _, id := range tree.order {
		if _, err := b.computeRollup(id, onStack, 0); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Balances) computeRollup(id int64, onStack map[int64]bool, depth int) (decimal.Decimal, error) {
	if total, done := b.rollup[id]; done {
		return total, nil
	}
	if onStack[id] || depth > b.tree.Len() {
		return decimal.Zero, fmt.Errorf("%w: at account %d", ErrCyclicAccountGraph, id)
	}
	onStack[id] = true
	total := b.raw[id]
	for _, childID := range b.tree.childIDs(id) {
		childTotal, err := b.computeRollup(childID, onStack, depth+1)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(childTotal)
	}
	onStack[id] = false
	b.rollup[id] = total
	return total, nil
}

// Tree returns the tree the balances were computed for.
func (b *Balances) Tree() *Tree {
	return b.tree
}

// Raw returns the account's own balance (postings made directly to it).
func (b *Balances) Raw(id int64) decimal.Decimal {
	return b.raw[id]
}

// Rollup returns the account's own balance plus the rollups of all its children.
// Unknown ids yield zero.
func (b *Balances) Rollup(id int64) decimal.Decimal {
	return b.rollup[id]
}

// RollupByCode returns the rollup of the first account with the given code.
// The boolean is false, and the amount zero, when no account has that code.
func (b *Balances) RollupByCode(code string) (decimal.Decimal, bool) {
	acc, ok := b.tree.FindByCode(code)
	if !ok {
		return decimal.Zero, false
	}
	return b.rollup[acc.ID], true
}

// Orphans returns the posting lines that referenced unknown accounts.
func (b *Balances) Orphans() []domain.OrphanLine {
	out := make([]domain.OrphanLine, len(b.orphans))
	copy(out, b.orphans)
	return out
}
