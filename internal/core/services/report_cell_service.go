package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
)

type reportCellService struct {
	BaseService
	cellRepo portsrepo.ReportCellRepositoryFacade
}

// NewReportCellService creates the service managing statement notes and comparison figures.
func NewReportCellService(repo portsrepo.ReportCellRepositoryFacade) portssvc.ReportCellSvc {
	return &reportCellService{cellRepo: repo}
}

var _ portssvc.ReportCellSvc = (*reportCellService)(nil)

func (s *reportCellService) ListCells(ctx context.Context) (map[string]string, error) {
	cells, err := s.cellRepo.FetchAllReportCells(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch report cells")
		return nil, fmt.Errorf("failed to fetch report cells: %w", err)
	}
	if cells == nil {
		cells = map[string]string{}
	}
	return cells, nil
}

func (s *reportCellService) GetCell(ctx context.Context, id string) (*domain.ReportCell, error) {
	if !ledger.IsCellKey(id) {
		return nil, fmt.Errorf("%w: invalid cell id %q", apperrors.ErrValidation, id)
	}
	cell, err := s.cellRepo.FindReportCell(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find report cell", slog.String("cell_id", id))
		}
		return nil, err
	}
	return cell, nil
}

// SaveCell upserts a cell. Saving the same value twice leaves the store unchanged.
func (s *reportCellService) SaveCell(ctx context.Context, id, value string) (*domain.ReportCell, error) {
	if !ledger.IsCellKey(id) {
		return nil, fmt.Errorf("%w: invalid cell id %q", apperrors.ErrValidation, id)
	}
	if err := s.cellRepo.SaveReportCell(ctx, id, value); err != nil {
		s.LogError(ctx, err, "Failed to save report cell", slog.String("cell_id", id))
		return nil, fmt.Errorf("failed to save report cell: %w", err)
	}
	s.LogDebug(ctx, "Report cell saved", slog.String("cell_id", id))
	return &domain.ReportCell{ID: id, Value: value}, nil
}
