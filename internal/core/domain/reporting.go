package domain

import (
	"github.com/shopspring/decimal"
)

// LineKind classifies a statement line for presentation.
type LineKind string

const (
	LineItem     LineKind = "ITEM"     // Section heading or account line
	LineSubtotal LineKind = "SUBTOTAL" // Subtotal row
	LineTotal    LineKind = "TOTAL"    // Grand total row
)

// AnomalyKind identifies a structural problem recovered while building a report.
type AnomalyKind string

const (
	AnomalyMissingSectionAccount AnomalyKind = "MISSING_SECTION_ACCOUNT"
	AnomalyOrphanLines           AnomalyKind = "ORPHAN_LINES"
)

// Anomaly describes a structural problem that was treated as zero rather than failing the report.
type Anomaly struct {
	Kind    AnomalyKind `json:"kind"`
	Section string      `json:"section,omitempty"`
	Code    string      `json:"code,omitempty"`
	Detail  string      `json:"detail"`
}

// StatementLine is a single row of a financial statement.
// Note and Comparison come from the annotation overlay and never affect Amount.
type StatementLine struct {
	RowID         string          `json:"rowId"` // Account id or reserved semantic tag
	AccountID     int64           `json:"accountId,omitempty"`
	AccountCode   string          `json:"accountCode,omitempty"`
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          LineKind        `json:"kind"`
	Bold          bool            `json:"bold"`
	Indent        int             `json:"indent"`
	NoteKey       string          `json:"noteKey,omitempty"` // Empty for total rows
	Note          string          `json:"note,omitempty"`
	ComparisonKey string          `json:"comparisonKey"`
	Comparison    string          `json:"comparison,omitempty"`
}

// StatementSection groups lines under a named part of a statement.
type StatementSection struct {
	Key   string          `json:"key"`
	Title string          `json:"title"`
	Lines []StatementLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// StatementHeader carries the descriptive context of a statement.
type StatementHeader struct {
	Title            string `json:"title"`
	PeriodLabel      string `json:"periodLabel"`
	Currency         string `json:"currency"`
	PeriodStart      string `json:"periodStart"`
	PeriodEnd        string `json:"periodEnd"`
	CurrentColumn    string `json:"currentColumn"`
	ComparisonColumn string `json:"comparisonColumn"`
}

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   int64           `json:"accountId"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with a nonzero own balance split into debit and credit columns.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	GrandDebit  decimal.Decimal   `json:"grandDebit"`
	GrandCredit decimal.Decimal   `json:"grandCredit"`
	Balanced    bool              `json:"balanced"`
	Difference  decimal.Decimal   `json:"difference"` // GrandDebit - GrandCredit, rounded to cents
	Warning     string            `json:"warning,omitempty"`
	OrphanLines []OrphanLine      `json:"orphanLines"`
}

// IncomeStatement is the profit and loss statement for the current period.
type IncomeStatement struct {
	Header            StatementHeader    `json:"header"`
	Sections          []StatementSection `json:"sections"`
	Revenue           decimal.Decimal    `json:"revenue"`
	CostOfSales       decimal.Decimal    `json:"costOfSales"`
	GrossProfit       decimal.Decimal    `json:"grossProfit"`
	OperatingExpenses decimal.Decimal    `json:"operatingExpenses"`
	NetIncome         decimal.Decimal    `json:"netIncome"`
	Anomalies         []Anomaly          `json:"anomalies"`
	OrphanLines       int                `json:"orphanLines"`
}

// BalanceSheet is the statement of financial position.
type BalanceSheet struct {
	Header                    StatementHeader    `json:"header"`
	Sections                  []StatementSection `json:"sections"`
	CurrentAssets             decimal.Decimal    `json:"currentAssets"`
	NonCurrentAssets          decimal.Decimal    `json:"nonCurrentAssets"`
	TotalAssets               decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal    `json:"totalLiabilities"`
	CurrentPeriodIncome       decimal.Decimal    `json:"currentPeriodIncome"`
	TotalEquity               decimal.Decimal    `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal    `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool               `json:"balanced"`
	Difference                decimal.Decimal    `json:"difference"` // TotalAssets - TotalLiabilitiesAndEquity
	Warning                   string             `json:"warning,omitempty"`
	Anomalies                 []Anomaly          `json:"anomalies"`
	OrphanLines               int                `json:"orphanLines"`
}

// Dashboard holds headline figures and ratios for the home screen.
type Dashboard struct {
	Currency           string           `json:"currency"`
	TotalAssets        decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal  `json:"totalLiabilities"`
	TotalRevenue       decimal.Decimal  `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal  `json:"totalExpenses"`
	NetIncome          decimal.Decimal  `json:"netIncome"`
	CurrentAssets      decimal.Decimal  `json:"currentAssets"`
	CurrentLiabilities decimal.Decimal  `json:"currentLiabilities"`
	Cash               decimal.Decimal  `json:"cash"`
	WorkingCapital     decimal.Decimal  `json:"workingCapital"`
	CurrentRatio       *decimal.Decimal `json:"currentRatio"` // nil when there are no current liabilities
	ProfitMarginPct    decimal.Decimal  `json:"profitMarginPct"`
	Anomalies          []Anomaly        `json:"anomalies"`
}
