package mapping

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		ID:   d.ID,
		Code: d.Code,
		Name: d.Name,
	}
	if !d.IsTopLevel() {
		parentID := d.ParentID
		m.ParentID = &parentID
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		ID:       m.ID,
		Code:     m.Code,
		Name:     m.Name,
		ParentID: domain.RootParentID,
	}
	if m.ParentID != nil {
		d.ParentID = *m.ParentID
	}
	return d
}
