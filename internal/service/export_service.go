package service

import (
	"context"
	"fmt"
	"time"

	"chain-dashboard/internal/metrics"
	"chain-dashboard/internal/model"
	"chain-dashboard/internal/repository"
	"chain-dashboard/internal/snapshot"

	"github.com/rs/zerolog"
)

// exportService implements ExportService.
type exportService struct {
	datasets DatasetService
	exporter snapshot.Exporter
	repo     repository.DatasetRepository
	logger   zerolog.Logger
}

// NewExportService creates an export service. repo may be nil when no
// database is configured, in which case SeedDatabase reports ErrSeedingDisabled.
func NewExportService(
	datasets DatasetService,
	exporter snapshot.Exporter,
	repo repository.DatasetRepository,
	logger zerolog.Logger,
) ExportService {
	return &exportService{
		datasets: datasets,
		exporter: exporter,
		repo:     repo,
		logger:   logger.With().Str("service", "export").Logger(),
	}
}

// ExportSnapshot writes the current dataset as a snapshot and returns its location.
func (s *exportService) ExportSnapshot(ctx context.Context) (*model.ExportResult, error) {
	ds := s.datasets.Snapshot()

	location, err := s.exporter.Export(ctx, ds)
	metrics.ObserveExport("snapshot", err)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("generation_id", ds.GenerationID.String()).
			Msg("failed to export snapshot")
		return nil, fmt.Errorf("failed to export snapshot: %w", err)
	}

	s.logger.Info().
		Str("generation_id", ds.GenerationID.String()).
		Str("location", location).
		Msg("snapshot exported")

	return &model.ExportResult{GenerationID: ds.GenerationID, Location: location}, nil
}

// SeedDatabase replaces the database contents with the current dataset in one transaction.
func (s *exportService) SeedDatabase(ctx context.Context) (*model.SeedResult, error) {
	if s.repo == nil {
		return nil, model.ErrSeedingDisabled
	}

	ds := s.datasets.Snapshot()
	result, err := Seed(ctx, s.repo, ds, s.logger)
	metrics.ObserveExport("database", err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Seed writes ds into repo, replacing whatever was seeded before.
func Seed(ctx context.Context, repo repository.DatasetRepository, ds *model.Dataset, logger zerolog.Logger) (result *model.SeedResult, err error) {
	start := time.Now()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = repo.Truncate(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	if err = repo.InsertGeneration(ctx, tx, ds); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	if err = repo.InsertShops(ctx, tx, ds.Shops); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	if err = repo.InsertCustomers(ctx, tx, ds.Customers); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	items, err := repo.InsertOrders(ctx, tx, ds.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info().
		Str("generation_id", ds.GenerationID.String()).
		Int("customers", len(ds.Customers)).
		Int("orders", len(ds.Orders)).
		Int("order_items", items).
		Int("shops", len(ds.Shops)).
		Dur("duration", time.Since(start)).
		Msg("database seeded")

	return &model.SeedResult{
		GenerationID: ds.GenerationID,
		Customers:    len(ds.Customers),
		Orders:       len(ds.Orders),
		OrderItems:   items,
		Shops:        len(ds.Shops),
	}, nil
}
