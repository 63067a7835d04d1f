package ledger_test

import (
	"testing"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportConfig() ledger.ReportConfig {
	return ledger.DefaultReportConfig(2025)
}

func findLine(t *testing.T, sections []domain.StatementSection, rowID string) domain.StatementLine {
	t.Helper()
	for _, s := range sections {
		for _, l := range s.Lines {
			if l.RowID == rowID {
				return l
			}
		}
	}
	t.Fatalf("row %q not found", rowID)
	return domain.StatementLine{}
}

func findSection(t *testing.T, sections []domain.StatementSection, key string) domain.StatementSection {
	t.Helper()
	for _, s := range sections {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("section %q not found", key)
	return domain.StatementSection{}
}

func TestBuildIncomeStatement_RevenueSignFlipped(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, Code: "1", Name: "Assets"},
		{ID: 4, Code: "4", Name: "Revenue"},
		{ID: 41, Code: "41", Name: "Sales", ParentID: 4},
	}
	entries := []domain.JournalEntry{entry(1, debit(1, "500"), credit(41, "500"))}

	is, err := ledger.BuildIncomeStatement(accounts, entries, nil, reportConfig())

	require.NoError(t, err)
	assert.Equal(t, "500.00", is.Revenue.StringFixed(2))
	assert.Equal(t, "500.00", findLine(t, is.Sections, ledger.RowRevenue).Amount.StringFixed(2))
	assert.Equal(t, "500.00", findLine(t, is.Sections, "41").Amount.StringFixed(2))
	assertAmount(t, "500", is.NetIncome)
}

func TestBuildIncomeStatement_TradingYear(t *testing.T) {
	is, err := ledger.BuildIncomeStatement(ledger.DefaultChart(), tradingLedger(), nil, reportConfig())
	require.NoError(t, err)

	assertAmount(t, "5000", is.Revenue)
	assertAmount(t, "3000", is.CostOfSales)
	assertAmount(t, "2000", is.GrossProfit)
	assertAmount(t, "500", is.OperatingExpenses)
	assertAmount(t, "1500", is.NetIncome)
	assert.Empty(t, is.Anomalies)
	assert.Zero(t, is.OrphanLines)

	cost := findSection(t, is.Sections, ledger.SectionCostOfSales)
	require.Len(t, cost.Lines, 2)
	assert.Equal(t, "511", cost.Lines[1].AccountCode)
	assertAmount(t, "3000", cost.Lines[1].Amount)

	gross := findLine(t, is.Sections, ledger.RowGrossProfit)
	assert.Equal(t, domain.LineSubtotal, gross.Kind)
	assert.Empty(t, gross.NoteKey, "total rows carry no note column")
	assert.Equal(t, "prev_inc_gross", gross.ComparisonKey)

	net := findLine(t, is.Sections, ledger.RowNetIncome)
	assert.Equal(t, domain.LineTotal, net.Kind)
	assert.True(t, net.Bold)

	assert.Equal(t, "SAR", is.Header.Currency)
	assert.Equal(t, "2025-12-31", is.Header.PeriodEnd)
}

func TestBuildIncomeStatement_MissingSectionsAreZero(t *testing.T) {
	accounts := []domain.Account{{ID: 1, Code: "1", Name: "Assets"}}

	is, err := ledger.BuildIncomeStatement(accounts, nil, nil, reportConfig())

	require.NoError(t, err)
	assert.True(t, is.Revenue.IsZero())
	assert.True(t, is.NetIncome.IsZero())
	require.Len(t, is.Anomalies, 3)
	assert.Equal(t, domain.AnomalyMissingSectionAccount, is.Anomalies[0].Kind)
	assert.Equal(t, "4", is.Anomalies[0].Code)
}

func TestStatements_OverlayLeavesTotalsUntouched(t *testing.T) {
	overlay := ledger.NewCells(nil)
	overlay.Put("note_8", "إيضاح 3")
	overlay.Put("prev_inc_net", "1,200.00")

	plain, err := ledger.BuildBalanceSheet(ledger.DefaultChart(), tradingLedger(), nil, reportConfig())
	require.NoError(t, err)
	annotated, err := ledger.BuildBalanceSheet(ledger.DefaultChart(), tradingLedger(), overlay, reportConfig())
	require.NoError(t, err)

	cash := findLine(t, annotated.Sections, "8")
	assert.Equal(t, "إيضاح 3", cash.Note)
	assert.Equal(t, "note_8", cash.NoteKey)
	assertAmount(t, "9500", cash.Amount)
	assert.True(t, plain.TotalAssets.Equal(annotated.TotalAssets))
	assert.True(t, plain.TotalLiabilitiesAndEquity.Equal(annotated.TotalLiabilitiesAndEquity))
	assert.Empty(t, findLine(t, plain.Sections, "8").Note)

	is, err := ledger.BuildIncomeStatement(ledger.DefaultChart(), tradingLedger(), overlay, reportConfig())
	require.NoError(t, err)
	assert.Equal(t, "1,200.00", findLine(t, is.Sections, ledger.RowNetIncome).Comparison)
	assertAmount(t, "1500", is.NetIncome)
}

func TestBuildBalanceSheet_TradingYear(t *testing.T) {
	bs, err := ledger.BuildBalanceSheet(ledger.DefaultChart(), tradingLedger(), nil, reportConfig())
	require.NoError(t, err)

	assertAmount(t, "16250", bs.CurrentAssets)
	assertAmount(t, "0", bs.NonCurrentAssets)
	assertAmount(t, "16250", bs.TotalAssets)
	assertAmount(t, "4750", bs.TotalLiabilities)
	assertAmount(t, "1500", bs.CurrentPeriodIncome)
	assertAmount(t, "11500", bs.TotalEquity)
	assertAmount(t, "16250", bs.TotalLiabilitiesAndEquity)
	assert.True(t, bs.Balanced)
	assert.Empty(t, bs.Warning)
	assert.True(t, bs.Difference.IsZero())

	current := findSection(t, bs.Sections, ledger.SectionCurrentAssets)
	assert.Len(t, current.Lines, 5, "four children of current assets plus the subtotal")

	liabilities := findSection(t, bs.Sections, ledger.SectionLiabilities)
	require.Len(t, liabilities.Lines, 3)
	assert.Equal(t, "211", liabilities.Lines[0].AccountCode)
	assertAmount(t, "4000", liabilities.Lines[0].Amount)
	assert.Equal(t, "212", liabilities.Lines[1].AccountCode)
	assertAmount(t, "750", liabilities.Lines[1].Amount)

	equity := findSection(t, bs.Sections, ledger.SectionEquity)
	require.Len(t, equity.Lines, 4)
	assert.Equal(t, "31", equity.Lines[0].AccountCode)
	assertAmount(t, "10000", equity.Lines[0].Amount)
	assert.Equal(t, "32", equity.Lines[1].AccountCode)
	assert.Equal(t, ledger.RowPeriodIncome, equity.Lines[2].RowID)
	assert.Equal(t, "note_equity_inc", equity.Lines[2].NoteKey)
	assert.Zero(t, equity.Lines[2].AccountID)
}

func TestBuildBalanceSheet_AllEquityChildrenCounted(t *testing.T) {
	entries := []domain.JournalEntry{
		entry(1, debit(13, "10000"), credit(22, "6000"), credit(24, "4000")),
	}

	bs, err := ledger.BuildBalanceSheet(ledger.DefaultChart(), entries, nil, reportConfig())

	require.NoError(t, err)
	assertAmount(t, "10000", bs.TotalEquity)
	assert.True(t, bs.Balanced)
	equity := findSection(t, bs.Sections, ledger.SectionEquity)
	assertAmount(t, "6000", equity.Lines[0].Amount)
	assertAmount(t, "4000", equity.Lines[1].Amount)
}

func TestBuildBalanceSheet_LeafLiabilityGroupListed(t *testing.T) {
	accounts := []domain.Account{
		{ID: 1, Code: "1", Name: "Assets"},
		{ID: 6, Code: "11", Name: "Current", ParentID: 1},
		{ID: 8, Code: "111", Name: "Cash", ParentID: 6},
		{ID: 2, Code: "2", Name: "Liabilities"},
		{ID: 29, Code: "22", Name: "Long-term loan", ParentID: 2},
	}
	entries := []domain.JournalEntry{entry(1, debit(8, "300"), credit(29, "300"))}

	bs, err := ledger.BuildBalanceSheet(accounts, entries, nil, reportConfig())

	require.NoError(t, err)
	liabilities := findSection(t, bs.Sections, ledger.SectionLiabilities)
	require.Len(t, liabilities.Lines, 2)
	assert.Equal(t, "22", liabilities.Lines[0].AccountCode)
	assertAmount(t, "300", liabilities.Lines[0].Amount)
	assert.True(t, bs.Balanced)
	assert.NotEmpty(t, bs.Anomalies, "missing non-current, equity, revenue and expense heads are reported")
}

func TestBuildBalanceSheet_UnbalancedStillRendered(t *testing.T) {
	// Posting straight to a statement-less account breaks the identity.
	accounts := append(ledger.DefaultChart(), domain.Account{ID: 99, Code: "9", Name: "Suspense"})
	entries := []domain.JournalEntry{entry(1, debit(13, "250"), credit(99, "250"))}

	bs, err := ledger.BuildBalanceSheet(accounts, entries, nil, reportConfig())

	require.NoError(t, err)
	assert.False(t, bs.Balanced)
	assertAmount(t, "250", bs.Difference)
	assert.Contains(t, bs.Warning, "250.00")
	assert.NotEmpty(t, bs.Sections)
}

func TestBuildBalanceSheet_Identity(t *testing.T) {
	ledgers := map[string][]domain.JournalEntry{
		"empty":   nil,
		"trading": tradingLedger(),
		"loss year": {
			entry(1, debit(14, "2000"), credit(22, "2000")),
			entry(2, debit(28, "2600.40"), credit(14, "2600.40")),
			entry(3, debit(14, "199.99"), credit(25, "199.99")),
			entry(4, debit(20, "1500"), credit(30, "1500")),
		},
	}

	for name, entries := range ledgers {
		t.Run(name, func(t *testing.T) {
			bs, err := ledger.BuildBalanceSheet(ledger.DefaultChart(), entries, nil, reportConfig())
			require.NoError(t, err)
			assert.True(t, bs.Balanced)
			assert.True(t, bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity)).Abs().LessThan(ledger.ReportTolerance))

			tb, err := ledger.BuildTrialBalance(ledger.DefaultChart(), entries)
			require.NoError(t, err)
			assert.True(t, tb.GrandDebit.Equal(tb.GrandCredit))
		})
	}
}

func TestBuildBalanceSheet_CyclicChart(t *testing.T) {
	accounts := []domain.Account{{ID: 1, Code: "1", ParentID: 1}}

	_, err := ledger.BuildBalanceSheet(accounts, nil, nil, reportConfig())

	assert.ErrorIs(t, err, ledger.ErrCyclicAccountGraph)
}
