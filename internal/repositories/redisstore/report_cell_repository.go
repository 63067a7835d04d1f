// Package redisstore keeps the annotation overlay in a Redis hash so several
// API instances share notes and comparison figures.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// DefaultCellsKey is the hash holding every overlay cell.
const DefaultCellsKey = "finstatements:report_cells"

// ReportCellRepository stores overlay cells as fields of one Redis hash.
type ReportCellRepository struct {
	client redis.UniversalClient
	key    string
}

// NewReportCellRepository uses DefaultCellsKey when key is empty.
func NewReportCellRepository(client redis.UniversalClient, key string) *ReportCellRepository {
	if key == "" {
		key = DefaultCellsKey
	}
	return &ReportCellRepository{client: client, key: key}
}

var _ portsrepo.ReportCellRepositoryFacade = (*ReportCellRepository)(nil)

// NewClient parses a redis:// URL and checks the server is reachable.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (r *ReportCellRepository) FetchAllReportCells(ctx context.Context) (map[string]string, error) {
	cells, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read report cells from redis", err)
	}
	return cells, nil
}

func (r *ReportCellRepository) FindReportCell(ctx context.Context, id string) (*domain.ReportCell, error) {
	value, err := r.client.HGet(ctx, r.key, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read report cell "+id+" from redis", err)
	}
	return &domain.ReportCell{ID: id, Value: value}, nil
}

func (r *ReportCellRepository) SaveReportCell(ctx context.Context, id, value string) error {
	if err := r.client.HSet(ctx, r.key, id, value).Err(); err != nil {
		return apperrors.NewAppError(500, "failed to write report cell "+id+" to redis", err)
	}
	return nil
}
