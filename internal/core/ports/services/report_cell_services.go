package services

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// ReportCellSvc manages the annotation overlay: notes and prior-period figures
// keyed by statement cell id.
type ReportCellSvc interface {
	ListCells(ctx context.Context) (map[string]string, error)
	GetCell(ctx context.Context, id string) (*domain.ReportCell, error)
	SaveCell(ctx context.Context, id, value string) (*domain.ReportCell, error)
}
