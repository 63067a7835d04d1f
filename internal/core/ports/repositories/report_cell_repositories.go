package repositories

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// ReportCellReader defines read operations for the annotation overlay
type ReportCellReader interface {
	// FetchAllReportCells returns every stored cell keyed by id.
	FetchAllReportCells(ctx context.Context) (map[string]string, error)

	// FindReportCell returns apperrors.ErrNotFound when no value is stored under id.
	FindReportCell(ctx context.Context, id string) (*domain.ReportCell, error)
}

// ReportCellWriter defines write operations for the annotation overlay
type ReportCellWriter interface {
	// SaveReportCell creates or replaces the value stored under id.
	SaveReportCell(ctx context.Context, id, value string) error
}

// ReportCellRepositoryFacade combines all report-cell repository interfaces
type ReportCellRepositoryFacade interface {
	ReportCellReader
	ReportCellWriter
}
