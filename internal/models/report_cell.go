package models

import "time"

// ReportCell represents a row of the report_cells table.
type ReportCell struct {
	ID        string    `db:"id"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
