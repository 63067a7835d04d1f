package dto

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit-or-credit line of a new journal entry.
type CreateJournalLineRequest struct {
	AccountID int64           `json:"accountId" binding:"required,min=1"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalRequest defines the data needed to post a journal entry.
// Balance and line rules are enforced by the service, not by binding tags.
type CreateJournalRequest struct {
	Date        string                     `json:"date" binding:"required,isodate"`
	Description string                     `json:"description" binding:"required,max=500"`
	Details     []CreateJournalLineRequest `json:"details" binding:"required,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	AccountID   int64           `json:"accountId"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	ID          int64                 `json:"id"`
	Date        string                `json:"date"`
	Description string                `json:"description"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Details     []JournalLineResponse `json:"details"`
}

// ListJournalsResponse wraps a list of journal entries.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ImportRejection explains why an imported entry was not posted.
type ImportRejection struct {
	EntryNumber int64  `json:"entryNumber"`
	Reason      string `json:"reason"`
}

// SkippedLine is an imported line whose account code is not in the chart.
type SkippedLine struct {
	EntryNumber int64  `json:"entryNumber"`
	AccountCode string `json:"accountCode"`
}

// ImportJournalsResponse summarises a journal import.
type ImportJournalsResponse struct {
	Imported     int               `json:"imported"`
	Rejected     []ImportRejection `json:"rejected"`
	SkippedLines []SkippedLine     `json:"skippedLines"`
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	lines := make([]JournalLineResponse, len(e.Details))
	for i, l := range e.Details {
		lines[i] = JournalLineResponse{
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return JournalResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		TotalAmount: e.TotalAmount,
		Details:     lines,
	}
}

// ToListJournalsResponse converts a slice of entries to the list DTO.
func ToListJournalsResponse(entries []domain.JournalEntry) ListJournalsResponse {
	res := ListJournalsResponse{Journals: make([]JournalResponse, len(entries))}
	for i := range entries {
		res.Journals[i] = ToJournalResponse(&entries[i])
	}
	return res
}

// ToDomainJournalEntry converts the request into a candidate entry.
func (r CreateJournalRequest) ToDomainJournalEntry() domain.JournalEntry {
	lines := make([]domain.JournalLine, len(r.Details))
	for i, l := range r.Details {
		lines[i] = domain.JournalLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
	}
	return domain.JournalEntry{Date: r.Date, Description: r.Description, Details: lines}
}
