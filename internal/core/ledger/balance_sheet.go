package ledger

import (
	"fmt"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Balance sheet section keys.
const (
	SectionCurrentAssets    = "current_assets"
	SectionNonCurrentAssets = "non_current_assets"
	SectionTotalAssets      = "total_assets"
	SectionLiabilities      = "liabilities"
	SectionEquity           = "equity"
	SectionLiabEquity       = "total_liabilities_and_equity"
	SectionAssets           = "assets"
	SectionCurrentLiab      = "current_liabilities"
	SectionCash             = "cash"
)

// BuildBalanceSheet derives the statement of financial position.
//
// Assets list every direct child of the current and non-current heads with a
// subtotal each. Liabilities list the nonzero grandchildren of the liabilities
// head, flipped. Equity lists every direct child of the equity head, flipped,
// plus a synthetic current-period income line (revenue minus expenses) that is
// not backed by any account. When assets and liabilities plus equity differ by
// 1.0 or more the sheet is still returned, with Balanced unset and a Warning.
func BuildBalanceSheet(accounts []domain.Account, entries []domain.JournalEntry, overlay Overlay, cfg ReportConfig) (*domain.BalanceSheet, error) {
	s, err := newStatement(accounts, entries, overlay, cfg)
	if err != nil {
		return nil, err
	}
	m := cfg.Sections

	current := s.assetSection(SectionCurrentAssets, "Current assets", m.CurrentAssets, RowCurrentAssetsTotal, "Total current assets")
	nonCurrent := s.assetSection(SectionNonCurrentAssets, "Non-current assets", m.NonCurrentAssets, RowNonCurrentTotal, "Total non-current assets")
	totalAssets := current.Total.Add(nonCurrent.Total)
	assetsTotal := domain.StatementSection{
		Key:   SectionTotalAssets,
		Title: "Total assets",
		Lines: []domain.StatementLine{totalLine(RowAssetsTotal, "Total assets", totalAssets, true)},
		Total: totalAssets,
	}

	liabilities := s.liabilitySection(m.Liabilities)

	equity := s.equitySection(m)

	totalLiabEquity := liabilities.Total.Add(equity.Total)
	liabEquity := domain.StatementSection{
		Key:   SectionLiabEquity,
		Title: "Total liabilities and equity",
		Lines: []domain.StatementLine{totalLine(RowLiabEquityTotal, "Total liabilities and equity", totalLiabEquity, true)},
		Total: totalLiabEquity,
	}

	diff := totalAssets.Sub(totalLiabEquity)
	sheet := &domain.BalanceSheet{
		Header:                    s.header("Statement of Financial Position", "As at "+cfg.FiscalYearEnd),
		Sections:                  s.finish([]domain.StatementSection{current, nonCurrent, assetsTotal, liabilities, equity, liabEquity}),
		CurrentAssets:             current.Total,
		NonCurrentAssets:          nonCurrent.Total,
		TotalAssets:               totalAssets,
		TotalLiabilities:          liabilities.Total,
		CurrentPeriodIncome:       NetIncomeOf(s.balances, m),
		TotalEquity:               equity.Total,
		TotalLiabilitiesAndEquity: totalLiabEquity,
		Balanced:                  diff.Abs().LessThan(ReportTolerance),
		Difference:                diff,
		Anomalies:                 s.anomalies,
		OrphanLines:               len(s.balances.Orphans()),
	}
	if !sheet.Balanced {
		sheet.Warning = fmt.Sprintf("Unbalanced: assets minus liabilities and equity is %s", diff.StringFixed(2))
	}
	return sheet, nil
}

// assetSection lists every direct child of the head (including zero balances)
// followed by the head's rollup as subtotal.
func (s *statement) assetSection(key, title, code, totalRow, totalLabel string) domain.StatementSection {
	head, found, total := s.total(key, code)
	section := domain.StatementSection{Key: key, Title: title, Total: total}
	if found {
		for _, child := range s.tree.ChildrenOf(head.ID) {
			section.Lines = append(section.Lines, accountLine(child, s.balances.Rollup(child.ID)))
		}
	}
	section.Lines = append(section.Lines, totalLine(totalRow, totalLabel, total, false))
	return section
}

// liabilitySection lists, for each group under the liabilities head, the
// group's children with a nonzero flipped rollup. A group without children is
// listed itself when nonzero.
func (s *statement) liabilitySection(code string) domain.StatementSection {
	head, found, rollup := s.total(SectionLiabilities, code)
	total := rollup.Mul(minusOne)
	section := domain.StatementSection{Key: SectionLiabilities, Title: "Liabilities", Total: total}
	if found {
		for _, group := range s.tree.ChildrenOf(head.ID) {
			if s.tree.IsLeaf(group.ID) {
				if amount := s.balances.Rollup(group.ID).Mul(minusOne); !amount.IsZero() {
					section.Lines = append(section.Lines, accountLine(group, amount))
				}
				continue
			}
			section.Lines = append(section.Lines, s.childLines(group.ID, true)...)
		}
	}
	section.Lines = append(section.Lines, totalLine(RowLiabilitiesTotal, "Total liabilities", total, false))
	return section
}

// equitySection lists every direct child of the equity head, flipped, then the
// current-period income line. The total is the flipped equity rollup plus
// current-period income.
func (s *statement) equitySection(m SectionMap) domain.StatementSection {
	head, found, rollup := s.total(SectionEquity, m.Equity)
	periodIncome := s.periodIncome(m)
	total := rollup.Mul(minusOne).Add(periodIncome)
	section := domain.StatementSection{Key: SectionEquity, Title: "Equity", Total: total}
	if found {
		for _, child := range s.tree.ChildrenOf(head.ID) {
			section.Lines = append(section.Lines, accountLine(child, s.balances.Rollup(child.ID).Mul(minusOne)))
		}
	}
	section.Lines = append(section.Lines,
		rowLine(RowPeriodIncome, "Current period income", periodIncome, false, 1),
		totalLine(RowEquityTotal, "Total equity", total, false),
	)
	return section
}

// periodIncome resolves the revenue and expense heads, recording anomalies for
// missing ones, and returns revenue minus expenses.
func (s *statement) periodIncome(m SectionMap) decimal.Decimal {
	_, _, revenue := s.total(SectionRevenue, m.Revenue)
	_, _, expenses := s.total(SectionExpenses, m.Expenses)
	return revenue.Mul(minusOne).Sub(expenses)
}
