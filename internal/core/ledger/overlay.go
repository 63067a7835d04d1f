package ledger

import (
	"strconv"
	"strings"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Reserved row ids for statement lines that are not backed by an account.
// Overlay keys built from them stay valid across regenerations.
const (
	RowRevenue            = "inc_rev"
	RowCostOfSales        = "inc_cost"
	RowGrossProfit        = "inc_gross"
	RowOperatingExpenses  = "inc_exp"
	RowNetIncome          = "inc_net"
	RowCurrentAssetsTotal = "bs_cur_ass_tot"
	RowNonCurrentTotal    = "bs_non_ass_tot"
	RowAssetsTotal        = "bs_ass_tot"
	RowLiabilitiesTotal   = "bs_liab_tot"
	RowPeriodIncome       = "equity_inc"
	RowEquityTotal        = "bs_eq_tot"
	RowLiabEquityTotal    = "bs_fin_tot"
)

// ReservedRows lists every reserved row id.
var ReservedRows = []string{
	RowRevenue, RowCostOfSales, RowGrossProfit, RowOperatingExpenses, RowNetIncome,
	RowCurrentAssetsTotal, RowNonCurrentTotal, RowAssetsTotal, RowLiabilitiesTotal,
	RowPeriodIncome, RowEquityTotal, RowLiabEquityTotal,
}

const (
	notePrefix       = "note_"
	comparisonPrefix = "prev_"
)

// Overlay supplies user-entered values for statement cells.
type Overlay interface {
	Cell(id string) (string, bool)
}

// NoteKey returns the overlay key of the note column for a row.
func NoteKey(rowID string) string {
	return notePrefix + rowID
}

// ComparisonKey returns the overlay key of the prior-period column for a row.
func ComparisonKey(rowID string) string {
	return comparisonPrefix + rowID
}

// IsCellKey reports whether id is a note or comparison key with a non-empty
// row id made of letters, digits and underscores.
func IsCellKey(id string) bool {
	row, ok := strings.CutPrefix(id, notePrefix)
	if !ok {
		row, ok = strings.CutPrefix(id, comparisonPrefix)
	}
	if !ok || row == "" {
		return false
	}
	for _, r := range row {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// AccountRowID returns the row id used for an account line.
func AccountRowID(accountID int64) string {
	return strconv.FormatInt(accountID, 10)
}

// Cells is a map-backed Overlay. The zero value is not usable; use NewCells.
type Cells struct {
	values map[string]string
}

// NewCells returns an overlay holding a copy of values.
func NewCells(values map[string]string) *Cells {
	c := &Cells{values: make(map[string]string, len(values))}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

// Get returns the value stored under id.
func (c *Cells) Get(id string) (string, bool) {
	v, ok := c.values[id]
	return v, ok
}

// Cell implements Overlay.
func (c *Cells) Cell(id string) (string, bool) {
	return c.Get(id)
}

// Put stores value under id, replacing any previous value.
func (c *Cells) Put(id, value string) {
	c.values[id] = value
}

// Len returns the number of stored cells.
func (c *Cells) Len() int {
	return len(c.values)
}

// applyOverlay fills the note and comparison columns of line from overlay.
func applyOverlay(line *domain.StatementLine, overlay Overlay) {
	if overlay == nil {
		return
	}
	if line.NoteKey != "" {
		if v, ok := overlay.Cell(line.NoteKey); ok {
			line.Note = v
		}
	}
	if v, ok := overlay.Cell(line.ComparisonKey); ok {
		line.Comparison = v
	}
}

// rowLine builds a section or account row. Such rows carry both overlay keys.
func rowLine(rowID, label string, amount decimal.Decimal, bold bool, indent int) domain.StatementLine {
	return domain.StatementLine{
		RowID:         rowID,
		Label:         label,
		Amount:        amount,
		Kind:          domain.LineItem,
		Bold:          bold,
		Indent:        indent,
		NoteKey:       NoteKey(rowID),
		ComparisonKey: ComparisonKey(rowID),
	}
}

// totalLine builds a subtotal or grand total row. Totals only carry a comparison key.
func totalLine(rowID, label string, amount decimal.Decimal, grand bool) domain.StatementLine {
	kind := domain.LineSubtotal
	if grand {
		kind = domain.LineTotal
	}
	return domain.StatementLine{
		RowID:         rowID,
		Label:         label,
		Amount:        amount,
		Kind:          kind,
		Bold:          grand,
		ComparisonKey: ComparisonKey(rowID),
	}
}

// accountLine builds an indented row for an account.
func accountLine(acc domain.Account, amount decimal.Decimal) domain.StatementLine {
	line := rowLine(AccountRowID(acc.ID), acc.Name, amount, false, 1)
	line.AccountID = acc.ID
	line.AccountCode = acc.Code
	return line
}
