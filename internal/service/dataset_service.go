package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chain-dashboard/internal/metrics"
	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// datasetService implements DatasetService.
type datasetService struct {
	builder     DatasetBuilder
	readLatency time.Duration
	logger      zerolog.Logger

	// refreshMu covers config read, build and swap of one Refresh.
	refreshMu sync.Mutex

	mu      sync.RWMutex
	config  model.GenerationConfig
	current *model.Dataset
}

// NewDatasetService creates the dataset slot and fills it with an initial
// generation built from cfg.
func NewDatasetService(
	ctx context.Context,
	builder DatasetBuilder,
	cfg model.GenerationConfig,
	readLatency time.Duration,
	logger zerolog.Logger,
) (DatasetService, error) {
	s := &datasetService{
		builder:     builder,
		readLatency: readLatency,
		config:      cfg.Clamped(),
		logger:      logger.With().Str("service", "dataset").Logger(),
	}

	if _, err := s.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to build initial dataset: %w", err)
	}
	return s, nil
}

// Configure clamps and stores the population sizes used by the next Refresh.
func (s *datasetService) Configure(ctx context.Context, userCount, orderCount int) model.GenerationConfig {
	requested := model.GenerationConfig{UserCount: userCount, OrderCount: orderCount}
	clamped := requested.Clamped()

	s.mu.Lock()
	s.config = clamped
	s.mu.Unlock()

	event := s.logger.Info()
	if clamped != requested {
		event = event.
			Int("requested_user_count", userCount).
			Int("requested_order_count", orderCount)
	}
	event.
		Int("user_count", clamped.UserCount).
		Int("order_count", clamped.OrderCount).
		Msg("generation config updated")

	return clamped
}

// Config returns the stored generation config.
func (s *datasetService) Config() model.GenerationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Refresh regenerates the dataset from the stored config and replaces it wholesale.
// Refreshes run one at a time; readers holding the previous dataset keep a
// consistent view of it.
func (s *datasetService) Refresh(ctx context.Context) (*model.Dataset, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	cfg := s.Config()

	start := time.Now()
	ds, err := s.builder.Build(ctx, cfg)
	metrics.ObserveGeneration(time.Since(start), err)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("user_count", cfg.UserCount).
			Int("order_count", cfg.OrderCount).
			Msg("failed to regenerate dataset")
		return nil, fmt.Errorf("failed to regenerate dataset: %w", err)
	}

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()

	metrics.SetDatasetSize(len(ds.Customers), len(ds.Orders), len(ds.Shops))

	s.logger.Info().
		Str("generation_id", ds.GenerationID.String()).
		Dur("duration", time.Since(start)).
		Msg("dataset published")

	return ds, nil
}

// Snapshot returns the currently published dataset.
func (s *datasetService) Snapshot() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// read waits out the simulated read latency and returns the current dataset.
func (s *datasetService) read(ctx context.Context) (*model.Dataset, error) {
	if err := simulateLatency(ctx, s.readLatency); err != nil {
		return nil, err
	}
	return s.Snapshot(), nil
}

// Users returns the customers of the current dataset.
func (s *datasetService) Users(ctx context.Context) ([]model.Customer, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Customers, nil
}

// Orders returns the orders of the current dataset.
func (s *datasetService) Orders(ctx context.Context) ([]model.Order, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Orders, nil
}

// Shops returns the shops of the current dataset.
func (s *datasetService) Shops(ctx context.Context) ([]model.Shop, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Shops, nil
}

// Customer looks up a customer by ID.
func (s *datasetService) Customer(ctx context.Context, id string) (*model.Customer, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range ds.Customers {
		if ds.Customers[i].ID == id {
			c := ds.Customers[i]
			return &c, nil
		}
	}

	s.logger.Debug().Str("customer_id", id).Msg("customer not found")
	return nil, model.ErrCustomerNotFound
}

// Order looks up an order by ID.
func (s *datasetService) Order(ctx context.Context, id string) (*model.Order, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range ds.Orders {
		if ds.Orders[i].ID == id {
			o := ds.Orders[i]
			return &o, nil
		}
	}

	s.logger.Debug().Str("order_id", id).Msg("order not found")
	return nil, model.ErrOrderNotFound
}

// ListCustomers filters, sorts and pages customers.
func (s *datasetService) ListCustomers(ctx context.Context, q model.CustomerQuery) (*model.CustomerList, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return listCustomers(ds.Customers, q), nil
}

// ListOrders filters, sorts and pages orders.
func (s *datasetService) ListOrders(ctx context.Context, q model.OrderQuery) (*model.OrderList, error) {
	ds, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return listOrders(ds.Orders, q), nil
}

// simulateLatency blocks for d or until ctx is done.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
