package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
)

// ReportCellRepository keeps overlay cells in a map. Writes are last-write-wins.
type ReportCellRepository struct {
	mu    sync.RWMutex
	cells map[string]string
}

func NewReportCellRepository() *ReportCellRepository {
	return &ReportCellRepository{cells: make(map[string]string)}
}

var _ portsrepo.ReportCellRepositoryFacade = (*ReportCellRepository)(nil)

func (r *ReportCellRepository) FetchAllReportCells(ctx context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.cells), nil
}

func (r *ReportCellRepository) FindReportCell(ctx context.Context, id string) (*domain.ReportCell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.cells[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &domain.ReportCell{ID: id, Value: value}, nil
}

func (r *ReportCellRepository) SaveReportCell(ctx context.Context, id, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cells[id] = value
	return nil
}
