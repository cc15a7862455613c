package mockdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chain-dashboard/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Builder assembles complete, referentially consistent datasets.
type Builder struct {
	mu       sync.Mutex
	factory  *Factory
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger
}

// NewBuilder creates a builder. Calendar boundaries are computed in loc.
func NewBuilder(seed int64, opts FactoryOptions, loc *time.Location, logger zerolog.Logger) (*Builder, error) {
	factory, err := NewFactory(NewGenerator(seed), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity factory: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Builder{
		factory:  factory,
		location: loc,
		now:      time.Now,
		logger:   logger.With().Str("component", "dataset-builder").Logger(),
	}, nil
}

// Build generates a new dataset. Counts outside their bounds are clamped silently.
func (b *Builder) Build(ctx context.Context, cfg model.GenerationConfig) (*model.Dataset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := time.Now()
	clamped := cfg.Clamped()
	now := b.now().In(b.location)

	b.logger.Info().
		Int("user_count", clamped.UserCount).
		Int("order_count", clamped.OrderCount).
		Msg("generating mock dataset")

	shops, err := b.factory.Shops(now)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to generate shops")
		return nil, fmt.Errorf("failed to generate shops: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	customers, err := b.factory.Customers(clamped.UserCount, now)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to generate customers")
		return nil, fmt.Errorf("failed to generate customers: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders, err := b.factory.Orders(clamped.OrderCount, customers, now)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to generate orders")
		return nil, fmt.Errorf("failed to generate orders: %w", err)
	}

	ds := &model.Dataset{
		GenerationID: uuid.New(),
		GeneratedAt:  now,
		Config:       clamped,
		Customers:    customers,
		Orders:       orders,
		Shops:        shops,
	}

	b.logger.Info().
		Str("generation_id", ds.GenerationID.String()).
		Int("customers", len(customers)).
		Int("orders", len(orders)).
		Int("shops", len(shops)).
		Dur("duration", time.Since(start)).
		Msg("mock dataset generated")

	return ds, nil
}

// VerifyIntegrity checks that every order references a known customer and
// that every order satisfies its own invariants.
func VerifyIntegrity(ds *model.Dataset, v *validator.Validate) error {
	known := make(map[string]string, len(ds.Customers))
	for _, c := range ds.Customers {
		if c.UpdatedAt.Before(c.CreatedAt) {
			return fmt.Errorf("customer %s updated before creation", c.ID)
		}
		if c.LastVisit != nil && c.LastVisit.Before(c.CreatedAt) {
			return fmt.Errorf("customer %s visited before creation", c.ID)
		}
		known[c.ID] = c.Name
	}

	for _, o := range ds.Orders {
		name, ok := known[o.CustomerID]
		if !ok {
			return fmt.Errorf("order %s references unknown customer %s", o.ID, o.CustomerID)
		}
		if name != o.CustomerName {
			return fmt.Errorf("order %s customer name %q does not match %q", o.ID, o.CustomerName, name)
		}
		if err := v.Struct(o); err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
	}

	return nil
}
