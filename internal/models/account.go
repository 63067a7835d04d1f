package models

import "time"

// Account represents a row of the accounts table.
type Account struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	ParentID  *int64    `db:"parent_id"` // NULL for top-level accounts
	CreatedAt time.Time `db:"created_at"`
}
