package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column headers of the journals sheet.
const (
	JournalsSheet = "Journals"

	colEntryNo     = "Entry No"
	colDate        = "Date"
	colDescription = "Description"
	colAccountCode = "Account Code"
	colAccountName = "Account Name"
	colDebit       = "Debit"
	colCredit      = "Credit"
)

// WriteJournals flattens entries to one row per line. The entry number
// column ties the lines of an entry back together on import.
func WriteJournals(w io.Writer, entries []domain.JournalEntry) error {
	s, err := newSheetWriter(JournalsSheet, 6, 7)
	if err != nil {
		return err
	}
	if err := s.append(true, colEntryNo, colDate, colDescription, colAccountCode, colAccountName, colDebit, colCredit); err != nil {
		return err
	}
	for _, e := range entries {
		for _, line := range e.Details {
			if err := s.append(false, e.ID, e.Date, e.Description, line.AccountCode, line.AccountName, line.Debit, line.Credit); err != nil {
				return err
			}
		}
	}
	if err := s.widths(10, 12, 40, 14, 30, 14, 14); err != nil {
		return err
	}
	return s.writeTo(w)
}

// ReadJournals groups rows by entry number into candidate entries, in order
// of first appearance. A row without an entry number is an entry on its own.
// Lines carry account codes only; resolving them is left to the caller.
// Date and description come from the first row of each group.
func ReadJournals(r io.Reader) ([]domain.JournalEntry, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require(colAccountCode, colDebit, colCredit); err != nil {
		return nil, err
	}

	var entries []domain.JournalEntry
	groups := make(map[int64]int)
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		line := i + 2

		number, err := parseID(t.cell(row, colEntryNo), line, colEntryNo)
		if err != nil {
			return nil, err
		}
		debit, err := parseAmount(t.cell(row, colDebit), line, colDebit)
		if err != nil {
			return nil, err
		}
		credit, err := parseAmount(t.cell(row, colCredit), line, colCredit)
		if err != nil {
			return nil, err
		}
		jl := domain.JournalLine{AccountCode: t.cell(row, colAccountCode), Debit: debit, Credit: credit}

		if idx, ok := groups[number]; ok && number != 0 {
			entries[idx].Details = append(entries[idx].Details, jl)
			continue
		}
		if number != 0 {
			groups[number] = len(entries)
		}
		entries = append(entries, domain.JournalEntry{
			ID:          number,
			Date:        parseDate(t.cell(row, colDate)),
			Description: t.cell(row, colDescription),
			Details:     []domain.JournalLine{jl},
		})
	}
	return entries, nil
}

func parseAmount(raw string, line int, column string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: row %d: invalid %s %q", apperrors.ErrValidation, line, column, raw)
	}
	return d.Round(2), nil
}

// parseDate accepts ISO dates as text and Excel date serials. Anything else
// is passed through for entry validation to reject.
func parseDate(raw string) string {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(domain.DateLayout)
		}
	}
	return raw
}
