package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	cellRepo    portsrepo.ReportCellReader
	cfg         ledger.ReportConfig
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportConfig sets the currency, fiscal period and section map used by every report.
func WithReportConfig(cfg ledger.ReportConfig) ReportingServiceOption {
	return func(s *reportingService) {
		s.cfg = cfg
	}
}

// WithReportCells sets the store the annotation overlay is read from.
// Without it statements are rendered with empty notes and comparison columns.
func WithReportCells(repo portsrepo.ReportCellReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.cellRepo = repo
	}
}

// NewReportingService creates a new reporting service with the provided options.
// The default configuration covers the current calendar year.
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		cfg:         ledger.DefaultReportConfig(time.Now().Year()),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot reads the accounts and entries a report is built from.
func (s *reportingService) snapshot(ctx context.Context) ([]domain.Account, []domain.JournalEntry, error) {
	accounts, err := s.accountRepo.FetchAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for report")
		return nil, nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	entries, err := s.journalRepo.FetchAllJournalEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch journal entries for report")
		return nil, nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	return accounts, entries, nil
}

func (s *reportingService) overlay(ctx context.Context) (*ledger.Cells, error) {
	if s.cellRepo == nil {
		return ledger.NewCells(nil), nil
	}
	cells, err := s.cellRepo.FetchAllReportCells(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch report cells")
		return nil, fmt.Errorf("failed to fetch report cells: %w", err)
	}
	return ledger.NewCells(cells), nil
}

func (s *reportingService) logAnomalies(ctx context.Context, report string, anomalies []domain.Anomaly) {
	for _, a := range anomalies {
		s.LogWarn(ctx, "Report anomaly",
			slog.String("report", report),
			slog.String("kind", string(a.Kind)),
			slog.String("section", a.Section),
			slog.String("code", a.Code),
			slog.String("detail", a.Detail))
	}
}

// TrialBalance generates the trial balance for the whole ledger
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	tb, err := ledger.BuildTrialBalance(accounts, entries)
	if err != nil {
		s.LogError(ctx, err, "Failed to build trial balance")
		return nil, fmt.Errorf("failed to build trial balance: %w", err)
	}

	if !tb.Balanced {
		s.LogWarn(ctx, "Trial balance does not balance", slog.String("difference", tb.Difference.StringFixed(2)))
	}
	if len(tb.OrphanLines) > 0 {
		s.LogWarn(ctx, "Ledger has lines for unknown accounts", slog.Int("orphan_lines", len(tb.OrphanLines)))
	}
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.Int("row_count", len(tb.Rows)),
		slog.Int("entry_count", len(entries)))
	return tb, nil
}

// IncomeStatement generates the income statement with the annotation overlay merged
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	overlay, err := s.overlay(ctx)
	if err != nil {
		return nil, err
	}

	is, err := ledger.BuildIncomeStatement(accounts, entries, overlay, s.cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to build income statement")
		return nil, fmt.Errorf("failed to build income statement: %w", err)
	}

	s.logAnomalies(ctx, "income_statement", is.Anomalies)
	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("period_end", s.cfg.FiscalYearEnd),
		slog.String("net_income", is.NetIncome.StringFixed(2)),
		slog.Int("section_count", len(is.Sections)))
	return is, nil
}

// BalanceSheet generates the balance sheet with the annotation overlay merged
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	overlay, err := s.overlay(ctx)
	if err != nil {
		return nil, err
	}

	bs, err := ledger.BuildBalanceSheet(accounts, entries, overlay, s.cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to build balance sheet")
		return nil, fmt.Errorf("failed to build balance sheet: %w", err)
	}

	s.logAnomalies(ctx, "balance_sheet", bs.Anomalies)
	if !bs.Balanced {
		s.LogWarn(ctx, "Balance sheet does not balance", slog.String("difference", bs.Difference.StringFixed(2)))
	}
	s.LogInfo(ctx, "Balance sheet generated successfully",
		slog.String("period_end", s.cfg.FiscalYearEnd),
		slog.String("total_assets", bs.TotalAssets.StringFixed(2)),
		slog.Bool("balanced", bs.Balanced))
	return bs, nil
}

// Dashboard computes the headline figures
func (s *reportingService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	d, err := ledger.BuildDashboard(accounts, entries, s.cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	s.logAnomalies(ctx, "dashboard", d.Anomalies)
	s.LogDebug(ctx, "Dashboard generated", slog.String("net_income", d.NetIncome.StringFixed(2)))
	return d, nil
}

// ValidateSections checks that every code in the configured section map exists in the stored chart.
func (s *reportingService) ValidateSections(ctx context.Context) error {
	accounts, err := s.accountRepo.FetchAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for section check")
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	if err := s.cfg.Sections.Validate(ledger.NewTree(accounts)); err != nil {
		s.LogWarn(ctx, "Section map does not match the chart of accounts", slog.String("error", err.Error()))
		return err
	}
	s.LogDebug(ctx, "Section map matches the chart of accounts", slog.Int("section_map_version", s.cfg.Sections.Version))
	return nil
}
