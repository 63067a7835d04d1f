package ledger_test

import (
	"testing"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboard_TradingYear(t *testing.T) {
	d, err := ledger.BuildDashboard(ledger.DefaultChart(), tradingLedger(), reportConfig())
	require.NoError(t, err)

	assertAmount(t, "16250", d.TotalAssets)
	assertAmount(t, "4750", d.TotalLiabilities)
	assertAmount(t, "5000", d.TotalRevenue)
	assertAmount(t, "3500", d.TotalExpenses)
	assertAmount(t, "1500", d.NetIncome)
	assertAmount(t, "9500", d.Cash)
	assertAmount(t, "11500", d.WorkingCapital)
	require.NotNil(t, d.CurrentRatio)
	assert.Equal(t, "3.42", d.CurrentRatio.StringFixed(2))
	assert.Equal(t, "30.0", d.ProfitMarginPct.StringFixed(1))
	assert.Equal(t, "SAR", d.Currency)
	assert.Empty(t, d.Anomalies)
}

func TestBuildDashboard_NoLiabilitiesNoRevenue(t *testing.T) {
	entries := []domain.JournalEntry{entry(1, debit(13, "100"), credit(22, "100"))}

	d, err := ledger.BuildDashboard(ledger.DefaultChart(), entries, reportConfig())

	require.NoError(t, err)
	assert.Nil(t, d.CurrentRatio)
	assert.True(t, d.ProfitMarginPct.IsZero())
	assertAmount(t, "100", d.Cash)
}
