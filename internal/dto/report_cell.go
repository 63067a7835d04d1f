package dto

import "github.com/SscSPs/finstatements/internal/core/domain"

// SaveReportCellRequest carries the new value of an overlay cell. An empty value clears the cell's display.
type SaveReportCellRequest struct {
	Value string `json:"value" binding:"max=1000"`
}

// ReportCellResponse defines the data returned for an overlay cell.
type ReportCellResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// ListReportCellsResponse wraps every stored overlay cell.
type ListReportCellsResponse struct {
	Cells map[string]string `json:"cells"`
}

// ToReportCellResponse converts a domain.ReportCell to its DTO.
func ToReportCellResponse(c *domain.ReportCell) ReportCellResponse {
	return ReportCellResponse{ID: c.ID, Value: c.Value}
}
