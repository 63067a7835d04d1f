// Package spreadsheet moves the chart of accounts, the journal and the
// finished statements in and out of .xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of every workbook written by this package.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// amountFormat is the built-in "#,##0.00" number format.
const amountFormat = 4

// sheetWriter appends rows to a single-sheet workbook.
type sheetWriter struct {
	f          *excelize.File
	sheet      string
	row        int
	amountCols map[int]bool
	styles     [2][2]int // [bold][amount]
}

func newSheetWriter(sheet string, amountCols ...int) (*sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, err
	}

	s := &sheetWriter{f: f, sheet: sheet, amountCols: make(map[int]bool, len(amountCols))}
	for _, c := range amountCols {
		s.amountCols[c] = true
	}
	for bold := 0; bold < 2; bold++ {
		for amount := 0; amount < 2; amount++ {
			style := &excelize.Style{Font: &excelize.Font{Bold: bold == 1}}
			if amount == 1 {
				style.NumFmt = amountFormat
			}
			id, err := f.NewStyle(style)
			if err != nil {
				f.Close()
				return nil, err
			}
			s.styles[bold][amount] = id
		}
	}
	return s, nil
}

// append writes values into the next row. Decimal values are stored as numbers.
func (s *sheetWriter) append(bold bool, values ...any) error {
	s.row++
	for i, v := range values {
		if d, ok := v.(decimal.Decimal); ok {
			values[i] = d.Round(2).InexactFloat64()
		}
	}

	start, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	if err := s.f.SetSheetRow(s.sheet, start, &values); err != nil {
		return err
	}

	b := 0
	if bold {
		b = 1
	}
	for col := 1; col <= len(values); col++ {
		a := 0
		if s.amountCols[col] {
			a = 1
		}
		if b == 0 && a == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col, s.row)
		if err != nil {
			return err
		}
		if err := s.f.SetCellStyle(s.sheet, cell, cell, s.styles[b][a]); err != nil {
			return err
		}
	}
	return nil
}

func (s *sheetWriter) blank() {
	s.row++
}

func (s *sheetWriter) widths(widths ...float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := s.f.SetColWidth(s.sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// writeTo serializes the workbook and releases it.
func (s *sheetWriter) writeTo(w io.Writer) error {
	defer s.f.Close()
	if err := s.f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// table is the first sheet of an uploaded workbook, header row removed.
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader) (*table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrValidation)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &table{columns: map[string]int{}}, nil
	}

	t := &table{columns: make(map[string]int, len(rows[0])), rows: rows[1:]}
	for i, h := range rows[0] {
		if key := headerKey(h); key != "" {
			if _, dup := t.columns[key]; !dup {
				t.columns[key] = i
			}
		}
	}
	return t, nil
}

// headerKey folds a header cell so "Parent ID", "parent_id" and "ParentID" match.
func headerKey(h string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(h)))
}

// require reports the first header missing from the sheet.
func (t *table) require(headers ...string) error {
	for _, h := range headers {
		if _, ok := t.columns[headerKey(h)]; !ok {
			return fmt.Errorf("%w: missing column %q", apperrors.ErrValidation, h)
		}
	}
	return nil
}

// cell returns the trimmed value under header in row, or "" when absent.
func (t *table) cell(row []string, header string) string {
	i, ok := t.columns[headerKey(header)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
