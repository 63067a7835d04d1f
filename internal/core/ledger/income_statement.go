package ledger

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Income statement section keys.
const (
	SectionRevenue           = "revenue"
	SectionCostOfSales       = "cost_of_sales"
	SectionGrossProfit       = "gross_profit"
	SectionOperatingExpenses = "operating_expenses"
	SectionNetIncome         = "net_income"
	SectionExpenses          = "expenses"
)

// BuildIncomeStatement derives the profit and loss statement.
//
// Revenue is the credit-normal rollup of the revenue head, flipped so an
// increase is positive. Cost of sales and operating expenses are shown as
// positive debit rollups. Each of those sections also lists its direct
// children with a nonzero rollup. A missing section head counts as zero and is
// reported in Anomalies. The overlay only fills the note and comparison columns.
func BuildIncomeStatement(accounts []domain.Account, entries []domain.JournalEntry, overlay Overlay, cfg ReportConfig) (*domain.IncomeStatement, error) {
	s, err := newStatement(accounts, entries, overlay, cfg)
	if err != nil {
		return nil, err
	}
	m := cfg.Sections

	revenueAcc, revenueFound, revenueRollup := s.total(SectionRevenue, m.Revenue)
	revenue := revenueRollup.Mul(minusOne)
	costAcc, costFound, cost := s.total(SectionCostOfSales, m.CostOfSales)
	grossProfit := revenue.Sub(cost)
	opexAcc, opexFound, opex := s.total(SectionOperatingExpenses, m.OperatingExpenses)
	netIncome := grossProfit.Sub(opex)

	revenueSection := domain.StatementSection{
		Key:   SectionRevenue,
		Title: "Revenue",
		Lines: []domain.StatementLine{rowLine(RowRevenue, "Revenue", revenue, true, 0)},
		Total: revenue,
	}
	if revenueFound {
		revenueSection.Lines = append(revenueSection.Lines, s.childLines(revenueAcc.ID, true)...)
	}

	costSection := domain.StatementSection{
		Key:   SectionCostOfSales,
		Title: "Cost of sales",
		Lines: []domain.StatementLine{rowLine(RowCostOfSales, "Cost of sales", cost, false, 0)},
		Total: cost,
	}
	if costFound {
		costSection.Lines = append(costSection.Lines, s.childLines(costAcc.ID, false)...)
	}

	grossSection := domain.StatementSection{
		Key:   SectionGrossProfit,
		Title: "Gross profit",
		Lines: []domain.StatementLine{totalLine(RowGrossProfit, "Gross profit", grossProfit, false)},
		Total: grossProfit,
	}

	opexSection := domain.StatementSection{
		Key:   SectionOperatingExpenses,
		Title: "Operating expenses",
		Lines: []domain.StatementLine{rowLine(RowOperatingExpenses, "Operating expenses", opex, false, 0)},
		Total: opex,
	}
	if opexFound {
		opexSection.Lines = append(opexSection.Lines, s.childLines(opexAcc.ID, false)...)
	}

	netSection := domain.StatementSection{
		Key:   SectionNetIncome,
		Title: "Net income",
		Lines: []domain.StatementLine{totalLine(RowNetIncome, "Net income", netIncome, true)},
		Total: netIncome,
	}

	return &domain.IncomeStatement{
		Header:            s.header("Income Statement", "For the period ended "+cfg.FiscalYearEnd),
		Sections:          s.finish([]domain.StatementSection{revenueSection, costSection, grossSection, opexSection, netSection}),
		Revenue:           revenue,
		CostOfSales:       cost,
		GrossProfit:       grossProfit,
		OperatingExpenses: opex,
		NetIncome:         netIncome,
		Anomalies:         s.anomalies,
		OrphanLines:       len(s.balances.Orphans()),
	}, nil
}

// childLines lists the direct children of parentID with a nonzero rollup,
// flipping the sign when flip is set.
func (s *statement) childLines(parentID int64, flip bool) []domain.StatementLine {
	var lines []domain.StatementLine
	for _, child := range s.tree.ChildrenOf(parentID) {
		amount := s.balances.Rollup(child.ID)
		if amount.IsZero() {
			continue
		}
		if flip {
			amount = amount.Mul(minusOne)
		}
		lines = append(lines, accountLine(child, amount))
	}
	return lines
}

// NetIncomeOf returns revenue minus all expenses for the given balances, using
// the revenue and expense heads of m. Missing heads count as zero.
func NetIncomeOf(b *Balances, m SectionMap) decimal.Decimal {
	revenue, _ := b.RollupByCode(m.Revenue)
	expenses, _ := b.RollupByCode(m.Expenses)
	return revenue.Mul(minusOne).Sub(expenses)
}
