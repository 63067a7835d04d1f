package spreadsheet

import (
	"io"
	"strings"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/utils/money"
)

// Sheet names of the report exports.
const (
	TrialBalanceSheet    = "Trial Balance"
	IncomeStatementSheet = "Income Statement"
	BalanceSheetSheet    = "Balance Sheet"
	DashboardSheet       = "Dashboard"
)

// WriteTrialBalance writes one row per account followed by the totals row.
func WriteTrialBalance(w io.Writer, tb *domain.TrialBalance) error {
	s, err := newSheetWriter(TrialBalanceSheet, 3, 4)
	if err != nil {
		return err
	}
	if err := s.append(true, "Code", "Account", "Debit", "Credit"); err != nil {
		return err
	}
	for _, r := range tb.Rows {
		if err := s.append(false, r.AccountCode, r.AccountName, r.Debit, r.Credit); err != nil {
			return err
		}
	}
	if err := s.append(true, "", "Total", tb.GrandDebit, tb.GrandCredit); err != nil {
		return err
	}
	if tb.Warning != "" {
		s.blank()
		if err := s.append(true, tb.Warning); err != nil {
			return err
		}
	}
	if err := s.widths(12, 40, 16, 16); err != nil {
		return err
	}
	return s.writeTo(w)
}

// WriteIncomeStatement writes the statement with its note and comparison columns.
func WriteIncomeStatement(w io.Writer, is *domain.IncomeStatement) error {
	s, err := statementSheet(IncomeStatementSheet, is.Header, is.Sections)
	if err != nil {
		return err
	}
	return s.writeTo(w)
}

// WriteBalanceSheet writes the statement and, when it does not balance, the warning.
func WriteBalanceSheet(w io.Writer, bs *domain.BalanceSheet) error {
	s, err := statementSheet(BalanceSheetSheet, bs.Header, bs.Sections)
	if err != nil {
		return err
	}
	if !bs.Balanced && bs.Warning != "" {
		s.blank()
		if err := s.append(true, bs.Warning); err != nil {
			return err
		}
	}
	return s.writeTo(w)
}

func statementSheet(sheet string, h domain.StatementHeader, sections []domain.StatementSection) (*sheetWriter, error) {
	s, err := newSheetWriter(sheet, 4)
	if err != nil {
		return nil, err
	}
	if err := s.append(true, h.Title); err != nil {
		return nil, err
	}
	if err := s.append(false, h.PeriodLabel, h.Currency); err != nil {
		return nil, err
	}
	s.blank()
	if err := s.append(true, "Code", "Item", "Note", h.CurrentColumn, h.ComparisonColumn); err != nil {
		return nil, err
	}
	for _, sec := range sections {
		for _, l := range sec.Lines {
			label := strings.Repeat("  ", l.Indent) + l.Label
			if err := s.append(l.Bold, l.AccountCode, label, l.Note, l.Amount, l.Comparison); err != nil {
				return nil, err
			}
		}
	}
	if err := s.widths(12, 48, 14, 16, 16); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteDashboard writes the headline figures as metric/value pairs.
func WriteDashboard(w io.Writer, d *domain.Dashboard) error {
	s, err := newSheetWriter(DashboardSheet, 2)
	if err != nil {
		return err
	}
	if err := s.append(true, "Metric", "Value ("+d.Currency+")"); err != nil {
		return err
	}
	rows := []struct {
		label string
		value any
	}{
		{"Total assets", d.TotalAssets},
		{"Total liabilities", d.TotalLiabilities},
		{"Total revenue", d.TotalRevenue},
		{"Total expenses", d.TotalExpenses},
		{"Net income", d.NetIncome},
		{"Current assets", d.CurrentAssets},
		{"Current liabilities", d.CurrentLiabilities},
		{"Cash", d.Cash},
		{"Working capital", d.WorkingCapital},
		{"Current ratio", money.Dash},
		{"Profit margin %", d.ProfitMarginPct},
	}
	if d.CurrentRatio != nil {
		rows[9].value = *d.CurrentRatio
	}
	for _, r := range rows {
		if err := s.append(false, r.label, r.value); err != nil {
			return err
		}
	}
	if err := s.widths(24, 18); err != nil {
		return err
	}
	return s.writeTo(w)
}
