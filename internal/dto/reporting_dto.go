package dto

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/utils/money"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   int64           `json:"accountId"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	DebitText   string          `json:"debitText"`
	CreditText  string          `json:"creditText"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Balanced    bool                `json:"balanced"`
	Difference  decimal.Decimal     `json:"difference"`
	Warning     string              `json:"warning,omitempty"`
	OrphanLines []domain.OrphanLine `json:"orphanLines"`
}

// StatementLineResponse is a statement row with its display amount.
type StatementLineResponse struct {
	domain.StatementLine
	AmountText string `json:"amountText"`
}

// StatementSectionResponse is a statement section with display amounts.
type StatementSectionResponse struct {
	Key   string                  `json:"key"`
	Title string                  `json:"title"`
	Lines []StatementLineResponse `json:"lines"`
	Total decimal.Decimal         `json:"total"`
}

// IncomeStatementResponse represents the income statement response
type IncomeStatementResponse struct {
	Header   domain.StatementHeader     `json:"header"`
	Sections []StatementSectionResponse `json:"sections"`
	Summary  struct {
		Revenue           decimal.Decimal `json:"revenue"`
		CostOfSales       decimal.Decimal `json:"costOfSales"`
		GrossProfit       decimal.Decimal `json:"grossProfit"`
		OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
		NetIncome         decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
	Anomalies   []domain.Anomaly `json:"anomalies"`
	OrphanLines int              `json:"orphanLines"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Header   domain.StatementHeader     `json:"header"`
	Sections []StatementSectionResponse `json:"sections"`
	Summary  struct {
		TotalAssets               decimal.Decimal `json:"totalAssets"`
		TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
		TotalEquity               decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	} `json:"summary"`
	Balanced    bool             `json:"balanced"`
	Difference  decimal.Decimal  `json:"difference"`
	Warning     string           `json:"warning,omitempty"`
	Anomalies   []domain.Anomaly `json:"anomalies"`
	OrphanLines int              `json:"orphanLines"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows:        make([]TrialBalanceRowResponse, len(tb.Rows)),
		Balanced:    tb.Balanced,
		Difference:  tb.Difference,
		Warning:     tb.Warning,
		OrphanLines: tb.OrphanLines,
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Debit:       row.Debit,
			Credit:      row.Credit,
			DebitText:   money.FormatOrDash(row.Debit),
			CreditText:  money.FormatOrDash(row.Credit),
		}
	}
	response.Totals.Debit = tb.GrandDebit
	response.Totals.Credit = tb.GrandCredit
	return response
}

func toSectionResponses(sections []domain.StatementSection) []StatementSectionResponse {
	out := make([]StatementSectionResponse, len(sections))
	for i, s := range sections {
		lines := make([]StatementLineResponse, len(s.Lines))
		for j, l := range s.Lines {
			text := money.Format(l.Amount)
			if l.Kind == domain.LineItem {
				text = money.FormatOrDash(l.Amount)
			}
			lines[j] = StatementLineResponse{StatementLine: l, AmountText: text}
		}
		out[i] = StatementSectionResponse{Key: s.Key, Title: s.Title, Lines: lines, Total: s.Total}
	}
	return out
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	response := IncomeStatementResponse{
		Header:      is.Header,
		Sections:    toSectionResponses(is.Sections),
		Anomalies:   is.Anomalies,
		OrphanLines: is.OrphanLines,
	}
	response.Summary.Revenue = is.Revenue
	response.Summary.CostOfSales = is.CostOfSales
	response.Summary.GrossProfit = is.GrossProfit
	response.Summary.OperatingExpenses = is.OperatingExpenses
	response.Summary.NetIncome = is.NetIncome
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	response := BalanceSheetResponse{
		Header:      bs.Header,
		Sections:    toSectionResponses(bs.Sections),
		Balanced:    bs.Balanced,
		Difference:  bs.Difference,
		Warning:     bs.Warning,
		Anomalies:   bs.Anomalies,
		OrphanLines: bs.OrphanLines,
	}
	response.Summary.TotalAssets = bs.TotalAssets
	response.Summary.TotalLiabilities = bs.TotalLiabilities
	response.Summary.TotalEquity = bs.TotalEquity
	response.Summary.TotalLiabilitiesAndEquity = bs.TotalLiabilitiesAndEquity
	return response
}
