package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/models"
)

// ToModelJournalEntry converts a domain entry to its header row and line rows.
// Line numbers start at 1 and follow the order of entry.Details.
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntry, []models.JournalLine, error) {
	date, err := time.Parse(domain.DateLayout, d.Date)
	if err != nil {
		return models.JournalEntry{}, nil, fmt.Errorf("invalid entry date %q: %w", d.Date, err)
	}
	header := models.JournalEntry{
		ID:          d.ID,
		EntryDate:   date,
		Description: d.Description,
		TotalAmount: d.TotalAmount,
	}
	lines := make([]models.JournalLine, len(d.Details))
	for i, l := range d.Details {
		lines[i] = models.JournalLine{
			EntryID:     d.ID,
			LineNo:      i + 1,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return header, lines, nil
}

// ToDomainJournalEntry converts a header row and its lines to a domain entry.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	details := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		details[i] = domain.JournalLine{
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return domain.JournalEntry{
		ID:          m.ID,
		Date:        m.EntryDate.Format(domain.DateLayout),
		Description: m.Description,
		TotalAmount: m.TotalAmount,
		Details:     details,
	}
}
