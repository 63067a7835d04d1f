package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finstatements/internal/core/domain"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/spreadsheet"
	"github.com/SscSPs/finstatements/internal/utils/money"
)

var reportNames = []string{"trial-balance", "income-statement", "balance-sheet", "dashboard"}

func newReportCommand() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:       "report {trial-balance|income-statement|balance-sheet|dashboard}",
		Short:     "Print a financial report",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(false)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger, false)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.seedIfConfigured(cmd.Context()); err != nil {
				return err
			}

			return runReport(cmd.Context(), cmd.OutOrStdout(), a.services.Reporting, args[0], xlsxPath)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the report to this .xlsx file")

	return cmd
}

func runReport(ctx context.Context, out io.Writer, reporting portssvc.ReportingService, name, xlsxPath string) error {
	var (
		rendered string
		write    func(io.Writer) error
		warning  string
	)

	switch name {
	case "trial-balance":
		tb, err := reporting.TrialBalance(ctx)
		if err != nil {
			return err
		}
		rendered, warning = renderTrialBalance(tb), tb.Warning
		write = func(w io.Writer) error { return spreadsheet.WriteTrialBalance(w, tb) }
	case "income-statement":
		is, err := reporting.IncomeStatement(ctx)
		if err != nil {
			return err
		}
		rendered = renderStatement(is.Header, is.Sections)
		write = func(w io.Writer) error { return spreadsheet.WriteIncomeStatement(w, is) }
	case "balance-sheet":
		bs, err := reporting.BalanceSheet(ctx)
		if err != nil {
			return err
		}
		rendered = renderStatement(bs.Header, bs.Sections)
		if !bs.Balanced {
			warning = bs.Warning
		}
		write = func(w io.Writer) error { return spreadsheet.WriteBalanceSheet(w, bs) }
	case "dashboard":
		d, err := reporting.Dashboard(ctx)
		if err != nil {
			return err
		}
		rendered = renderDashboard(d)
		write = func(w io.Writer) error { return spreadsheet.WriteDashboard(w, d) }
	default:
		return fmt.Errorf("unknown report %q (want one of %s)", name, strings.Join(reportNames, ", "))
	}

	_, _ = fmt.Fprintln(out, rendered)
	if warning != "" {
		printWarn(out, warning)
	}

	if xlsxPath == "" {
		return nil
	}
	f, err := os.Create(xlsxPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", xlsxPath, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess(out, "Wrote "+xlsxPath)
	return nil
}

func renderTrialBalance(tb *domain.TrialBalance) string {
	rows := make([][]string, 0, len(tb.Rows)+1)
	for _, r := range tb.Rows {
		rows = append(rows, []string{r.AccountCode, r.AccountName, money.FormatOrDash(r.Debit), money.FormatOrDash(r.Credit)})
	}
	rows = append(rows, []string{"", emphasize(true, "Total"),
		emphasize(true, money.Format(tb.GrandDebit)), emphasize(true, money.Format(tb.GrandCredit))})
	return newTable([]string{"Code", "Account", "Debit", "Credit"}, rows, 2, 3).String()
}

func renderStatement(h domain.StatementHeader, sections []domain.StatementSection) string {
	var rows [][]string
	for _, s := range sections {
		for _, l := range s.Lines {
			amount := money.Format(l.Amount)
			if l.Kind == domain.LineItem {
				amount = money.FormatOrDash(l.Amount)
			}
			label := strings.Repeat("  ", l.Indent) + l.Label
			rows = append(rows, []string{l.AccountCode, emphasize(l.Bold, label), l.Note,
				emphasize(l.Bold, amount), l.Comparison})
		}
	}

	title := fmt.Sprintf("%s\n%s (%s)", boldStyle.Render(h.Title), h.PeriodLabel, h.Currency)
	t := newTable([]string{"Code", "Item", "Note", h.CurrentColumn, h.ComparisonColumn}, rows, 3, 4)
	return title + "\n" + t.String()
}

func renderDashboard(d *domain.Dashboard) string {
	ratio := money.Dash
	if d.CurrentRatio != nil {
		ratio = d.CurrentRatio.StringFixed(2)
	}
	rows := [][]string{
		{"Total assets", money.Format(d.TotalAssets)},
		{"Total liabilities", money.Format(d.TotalLiabilities)},
		{"Total revenue", money.Format(d.TotalRevenue)},
		{"Total expenses", money.Format(d.TotalExpenses)},
		{"Net income", money.Format(d.NetIncome)},
		{"Cash", money.Format(d.Cash)},
		{"Working capital", money.Format(d.WorkingCapital)},
		{"Current ratio", ratio},
		{"Profit margin", d.ProfitMarginPct.StringFixed(1) + "%"},
	}
	return newTable([]string{"Metric", "Value (" + d.Currency + ")"}, rows, 1).String()
}
