package ledger

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildDashboard computes the headline figures and liquidity ratios.
//
// CurrentRatio is nil when current liabilities are not positive. The profit
// margin is zero when there is no revenue. Missing section heads count as zero.
func BuildDashboard(accounts []domain.Account, entries []domain.JournalEntry, cfg ReportConfig) (*domain.Dashboard, error) {
	s, err := newStatement(accounts, entries, nil, cfg)
	if err != nil {
		return nil, err
	}
	m := cfg.Sections

	_, _, assets := s.total(SectionAssets, m.Assets)
	_, _, liabilities := s.total(SectionLiabilities, m.Liabilities)
	_, _, revenue := s.total(SectionRevenue, m.Revenue)
	_, _, expenses := s.total(SectionExpenses, m.Expenses)
	_, _, currentAssets := s.total(SectionCurrentAssets, m.CurrentAssets)
	_, _, currentLiabilities := s.total(SectionCurrentLiab, m.CurrentLiabilities)

	cash := decimal.Zero
	for _, code := range m.Cash {
		_, _, amount := s.total(SectionCash, code)
		cash = cash.Add(amount)
	}

	d := &domain.Dashboard{
		Currency:           cfg.Currency,
		TotalAssets:        assets,
		TotalLiabilities:   liabilities.Mul(minusOne),
		TotalRevenue:       revenue.Mul(minusOne),
		TotalExpenses:      expenses,
		CurrentAssets:      currentAssets,
		CurrentLiabilities: currentLiabilities.Mul(minusOne),
		Cash:               cash,
		ProfitMarginPct:    decimal.Zero,
	}
	d.NetIncome = d.TotalRevenue.Sub(d.TotalExpenses)
	d.WorkingCapital = d.CurrentAssets.Sub(d.CurrentLiabilities)
	if d.CurrentLiabilities.IsPositive() {
		ratio := d.CurrentAssets.DivRound(d.CurrentLiabilities, 2)
		d.CurrentRatio = &ratio
	}
	if d.TotalRevenue.IsPositive() {
		d.ProfitMarginPct = d.NetIncome.Mul(hundred).DivRound(d.TotalRevenue, 1)
	}
	d.Anomalies = s.anomalies
	return d, nil
}
