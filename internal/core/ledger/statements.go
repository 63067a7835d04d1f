package ledger

import (
	"fmt"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

var minusOne = decimal.NewFromInt(-1)

// statement carries the per-request state shared by the statement builders.
type statement struct {
	tree      *Tree
	balances  *Balances
	cfg       ReportConfig
	overlay   Overlay
	anomalies []domain.Anomaly
}

func newStatement(accounts []domain.Account, entries []domain.JournalEntry, overlay Overlay, cfg ReportConfig) (*statement, error) {
	tree := NewTree(accounts)
	balances, err := Aggregate(tree, entries)
	if err != nil {
		return nil, err
	}
	s := &statement{tree: tree, balances: balances, cfg: cfg, overlay: overlay, anomalies: []domain.Anomaly{}}
	if orphans := balances.Orphans(); len(orphans) > 0 {
		s.anomalies = append(s.anomalies, domain.Anomaly{
			Kind:   domain.AnomalyOrphanLines,
			Detail: fmt.Sprintf("%d posting line(s) reference accounts missing from the chart", len(orphans)),
		})
	}
	return s, nil
}

// section resolves a section head by code. A missing code is recorded as an
// anomaly and reported as not found so the caller can treat it as zero.
func (s *statement) section(name, code string) (domain.Account, bool) {
	acc, ok := s.tree.FindByCode(code)
	if !ok {
		s.anomalies = append(s.anomalies, domain.Anomaly{
			Kind:    domain.AnomalyMissingSectionAccount,
			Section: name,
			Code:    code,
			Detail:  fmt.Sprintf("no account with code %q; section treated as zero", code),
		})
	}
	return acc, ok
}

// total returns the rollup of a section head, zero when it is missing.
func (s *statement) total(name, code string) (domain.Account, bool, decimal.Decimal) {
	acc, ok := s.section(name, code)
	if !ok {
		return acc, false, decimal.Zero
	}
	return acc, true, s.balances.Rollup(acc.ID)
}

func (s *statement) header(title, periodLabel string) domain.StatementHeader {
	return domain.StatementHeader{
		Title:            title,
		PeriodLabel:      periodLabel,
		Currency:         s.cfg.Currency,
		PeriodStart:      s.cfg.FiscalYearStart,
		PeriodEnd:        s.cfg.FiscalYearEnd,
		CurrentColumn:    s.cfg.CurrentLabel,
		ComparisonColumn: s.cfg.ComparisonLabel,
	}
}

// finish merges the overlay into every line of every section.
func (s *statement) finish(sections []domain.StatementSection) []domain.StatementSection {
	for i := range sections {
		for j := range sections[i].Lines {
			applyOverlay(&sections[i].Lines[j], s.overlay)
		}
	}
	return sections
}
