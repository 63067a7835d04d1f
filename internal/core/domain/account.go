package domain

// RootParentID is the virtual parent of every top-level account.
const RootParentID int64 = 0

// Account is a node in the chart of accounts.
// Accounts form a forest: ParentID is either RootParentID or the ID of another account.
type Account struct {
	ID       int64  `json:"id"`       // Stable identifier assigned on creation
	Code     string `json:"code"`     // Hierarchical digit string, e.g. "11411" (unique)
	Name     string `json:"name"`     // Display name
	ParentID int64  `json:"parentId"` // 0 for top-level accounts
}

// IsTopLevel reports whether the account hangs directly off the virtual root.
func (a Account) IsTopLevel() bool {
	return a.ParentID == RootParentID
}
