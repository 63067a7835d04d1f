package ledger

import "github.com/SscSPs/finstatements/internal/core/domain"

// DefaultChart returns the default chart of accounts seeded into an empty store.
// Codes follow the section map returned by DefaultSectionMap.
func DefaultChart() []domain.Account {
	return []domain.Account{
		{ID: 1, Code: "1", Name: "Assets", ParentID: 0},
		{ID: 2, Code: "2", Name: "Liabilities", ParentID: 0},
		{ID: 3, Code: "3", Name: "Equity", ParentID: 0},
		{ID: 4, Code: "4", Name: "Revenue", ParentID: 0},
		{ID: 5, Code: "5", Name: "Expenses", ParentID: 0},

		{ID: 6, Code: "11", Name: "Current assets", ParentID: 1},
		{ID: 7, Code: "12", Name: "Non-current assets", ParentID: 1},

		{ID: 8, Code: "111", Name: "Cash and cash equivalents", ParentID: 6},
		{ID: 9, Code: "112", Name: "Banks", ParentID: 6},
		{ID: 10, Code: "113", Name: "Inventory", ParentID: 6},
		{ID: 11, Code: "114", Name: "Accounts receivable", ParentID: 6},

		{ID: 12, Code: "11111", Name: "Main cash boxes", ParentID: 8},
		{ID: 13, Code: "111111", Name: "Cash box (SAR)", ParentID: 12},
		{ID: 14, Code: "11211", Name: "Commercial bank account", ParentID: 9},
		{ID: 15, Code: "11311", Name: "Merchandise inventory", ParentID: 10},
		{ID: 16, Code: "11411", Name: "Main customers account", ParentID: 11},
		{ID: 17, Code: "114111", Name: "Customer A", ParentID: 16},

		{ID: 18, Code: "121", Name: "Property and equipment", ParentID: 7},
		{ID: 19, Code: "1211", Name: "Buildings", ParentID: 18},
		{ID: 20, Code: "12111", Name: "Head office building", ParentID: 19},

		{ID: 21, Code: "31", Name: "Capital", ParentID: 3},
		{ID: 22, Code: "31111", Name: "Paid-in capital", ParentID: 21},
		{ID: 23, Code: "32", Name: "Reserves and retained earnings", ParentID: 3},
		{ID: 24, Code: "32111", Name: "Retained earnings", ParentID: 23},

		{ID: 25, Code: "41", Name: "Sales", ParentID: 4},

		{ID: 26, Code: "51", Name: "Cost of sales", ParentID: 5},
		{ID: 27, Code: "511", Name: "Cost of goods sold", ParentID: 26},
		{ID: 28, Code: "52", Name: "Operating expenses", ParentID: 5},

		{ID: 29, Code: "21", Name: "Current liabilities", ParentID: 2},
		{ID: 30, Code: "211", Name: "Suppliers", ParentID: 29},
		{ID: 31, Code: "212", Name: "Tax liabilities", ParentID: 29},
		{ID: 32, Code: "2121", Name: "Value added tax", ParentID: 31},
		{ID: 33, Code: "21211", Name: "Output VAT (sales)", ParentID: 32},
		{ID: 34, Code: "21212", Name: "Input VAT (purchases)", ParentID: 32},
		{ID: 35, Code: "21213", Name: "Net VAT", ParentID: 32},
	}
}
