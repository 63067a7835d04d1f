package ledger

import (
	"fmt"
	"sort"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportTolerance is the largest difference at which a report still counts as balanced.
var ReportTolerance = decimal.NewFromInt(1)

// BuildTrialBalance lists every account with a nonzero own balance.
//
// A positive net goes to the debit column, anything else to the credit column.
// Rows are ordered by the numeric value of the account code. An out-of-balance
// ledger is reported through Balanced, Difference and Warning, never as an error.
func BuildTrialBalance(accounts []domain.Account, entries []domain.JournalEntry) (*domain.TrialBalance, error) {
	tree := NewTree(accounts)
	balances, err := Aggregate(tree, entries)
	if err != nil {
		return nil, err
	}

	tb := &domain.TrialBalance{
		Rows:        []domain.TrialBalanceRow{},
		GrandDebit:  decimal.Zero,
		GrandCredit: decimal.Zero,
		OrphanLines: balances.Orphans(),
	}
	for _, acc := range tree.Accounts() {
		net := balances.Raw(acc.ID)
		if net.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:   acc.ID,
			AccountCode: acc.Code,
			AccountName: acc.Name,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if net.IsPositive() {
			row.Debit = net
		} else {
			row.Credit = net.Neg()
		}
		tb.GrandDebit = tb.GrandDebit.Add(row.Debit)
		tb.GrandCredit = tb.GrandCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}
	sortByCode(tb.Rows)

	diff := tb.GrandDebit.Sub(tb.GrandCredit)
	tb.Difference = diff.Round(2)
	tb.Balanced = diff.Abs().LessThan(ReportTolerance)
	if !tb.Balanced {
		tb.Warning = fmt.Sprintf("Unbalanced: debit minus credit is %s", tb.Difference.StringFixed(2))
	}
	return tb, nil
}

// sortByCode orders rows by the numeric value of their codes. Codes that are
// not numbers sort after all numeric ones, lexicographically; ties fall back to id.
func sortByCode(rows []domain.TrialBalanceRow) {
	type key struct {
		numeric bool
		value   decimal.Decimal
	}
	keys := make(map[int64]key, len(rows))
	for _, r := range rows {
		v, err := decimal.NewFromString(r.AccountCode)
		keys[r.AccountID] = key{numeric: err == nil, value: v}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := keys[rows[i].AccountID], keys[rows[j].AccountID]
		switch {
		case ki.numeric && !kj.numeric:
			return true
		case !ki.numeric && kj.numeric:
			return false
		case ki.numeric && kj.numeric:
			if c := ki.value.Cmp(kj.value); c != 0 {
				return c < 0
			}
		default:
			if rows[i].AccountCode != rows[j].AccountCode {
				return rows[i].AccountCode < rows[j].AccountCode
			}
		}
		return rows[i].AccountID < rows[j].AccountID
	})
}
