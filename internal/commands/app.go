package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/core/services"
	"github.com/SscSPs/finstatements/internal/platform/config"
	"github.com/SscSPs/finstatements/internal/repositories/database/pgsql"
	"github.com/SscSPs/finstatements/internal/repositories/memory"
	"github.com/SscSPs/finstatements/internal/repositories/redisstore"
	"github.com/SscSPs/finstatements/pkg/database"
)

// app is the wired core shared by every command.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *portssvc.ServiceContainer
	closers  []func() error
}

// newApp picks the stores from the configuration and builds the service container.
// Without PGSQL_URL everything lives in memory for the life of the process.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*app, error) {
	reportCfg, err := cfg.ReportConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	repos := *memory.NewRepositoryProvider()

	if cfg.DatabaseURL != "" {
		if migrate && cfg.RunMigrations {
			if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			database.ClosePgxPool(pool)
			return nil
		})
		repos = pgsql.NewRepositoryProvider(pool)
		logger.Info("Using PostgreSQL storage")
	} else {
		logger.Warn("PGSQL_URL not set, using in-memory storage")
	}

	if cfg.RedisURL != "" {
		client, err := redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		repos.ReportCellRepo = redisstore.NewReportCellRepository(client, redisstore.DefaultCellsKey)
		logger.Info("Using Redis for report cells")
	}

	a.services = services.NewServiceContainer(reportCfg, repos)
	return a, nil
}

// seedIfConfigured writes the default chart into an empty store and checks the
// section map against whatever chart is stored.
func (a *app) seedIfConfigured(ctx context.Context) error {
	if a.cfg.SeedDefaultChart {
		if _, err := a.services.Account.SeedDefaultChart(ctx); err != nil {
			return fmt.Errorf("seeding default chart: %w", err)
		}
	}
	if err := a.services.Reporting.ValidateSections(ctx); err != nil {
		a.logger.Warn("Section map does not match the chart of accounts; missing sections report as zero",
			slog.String("error", err.Error()))
	}
	return nil
}

// Close releases connections in reverse order of creation.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
