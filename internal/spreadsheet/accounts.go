package spreadsheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
)

// Column headers of the accounts sheet.
const (
	AccountsSheet = "Accounts"

	colAccountID = "ID"
	colCode      = "Code"
	colName      = "Name"
	colParentID  = "Parent ID"
)

// WriteAccounts writes the chart of accounts, one row per account.
func WriteAccounts(w io.Writer, accounts []domain.Account) error {
	s, err := newSheetWriter(AccountsSheet)
	if err != nil {
		return err
	}
	if err := s.append(true, colAccountID, colCode, colName, colParentID); err != nil {
		return err
	}
	for _, a := range accounts {
		if err := s.append(false, a.ID, a.Code, a.Name, a.ParentID); err != nil {
			return err
		}
	}
	if err := s.widths(8, 12, 40, 10); err != nil {
		return err
	}
	return s.writeTo(w)
}

// ReadAccounts parses a sheet written by WriteAccounts. Rows without a code
// or a name are skipped. Rows without an id get one after the highest id seen.
func ReadAccounts(r io.Reader) ([]domain.Account, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require(colCode, colName); err != nil {
		return nil, err
	}

	var (
		accounts []domain.Account
		pending  []int // indexes of accounts without an id
		maxID    int64
	)
	for i, row := range t.rows {
		code, name := t.cell(row, colCode), t.cell(row, colName)
		if code == "" || name == "" {
			continue
		}
		line := i + 2
		id, err := parseID(t.cell(row, colAccountID), line, colAccountID)
		if err != nil {
			return nil, err
		}
		parent, err := parseID(t.cell(row, colParentID), line, colParentID)
		if err != nil {
			return nil, err
		}

		if id == 0 {
			pending = append(pending, len(accounts))
		}
		maxID = max(maxID, id)
		accounts = append(accounts, domain.Account{ID: id, Code: code, Name: name, ParentID: parent})
	}
	for _, i := range pending {
		maxID++
		accounts[i].ID = maxID
	}
	return accounts, nil
}

func parseID(raw string, line int, column string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	// Numeric cells may come back as "12" or "12.0".
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 0 && f == float64(int64(f)) {
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: row %d: invalid %s %q", apperrors.ErrValidation, line, column, raw)
}
