package services

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every call builds the report from a fresh snapshot of accounts, entries and cells.
type ReportingService interface {
	// TrialBalance lists accounts with a nonzero own balance.
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)

	// IncomeStatement generates the profit and loss statement with the annotation overlay merged.
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)

	// BalanceSheet generates the statement of financial position with the annotation overlay merged.
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)

	// Dashboard computes headline figures and ratios.
	Dashboard(ctx context.Context) (*domain.Dashboard, error)

	// ValidateSections checks the configured section map against the stored chart.
	ValidateSections(ctx context.Context) error
}
