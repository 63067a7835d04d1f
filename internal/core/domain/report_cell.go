package domain

// ReportCell is a user-supplied annotation keyed by a semantic cell id,
// e.g. "note_8" or "prev_inc_gross". Cells are presentational only.
type ReportCell struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
