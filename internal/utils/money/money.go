// Package money renders ledger amounts for people: two decimals with
// thousands separators, e.g. 1,234,567.89.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Dash is shown instead of a zero amount on item rows.
const Dash = "-"

var plain = gomoney.NewFormatter(2, ".", ",", "", "1")

// Format rounds to cents and formats with thousands separators.
// Negative amounts carry a leading minus sign.
func Format(amount decimal.Decimal) string {
	return plain.Format(amount.Round(2).Shift(2).IntPart())
}

// FormatOrDash is Format, except that zero renders as Dash.
func FormatOrDash(amount decimal.Decimal) string {
	if amount.Round(2).IsZero() {
		return Dash
	}
	return Format(amount)
}

// FormatCurrency formats using the display rules of an ISO currency code,
// e.g. "1,234.50 SAR" style fractions and grapheme placement. Unknown codes
// fall back to two decimals followed by the code.
func FormatCurrency(amount decimal.Decimal, code string) string {
	cur := gomoney.GetCurrency(code)
	if cur == nil {
		return Format(amount) + " " + code
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart()
	return cur.Formatter().Format(minor)
}
