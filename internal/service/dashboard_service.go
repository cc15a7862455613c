package service

import (
	"context"
	"time"

	"chain-dashboard/internal/model"
	"chain-dashboard/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	summaryTrendDays = 30
	recentLimit      = 5
	maxTrendDays     = 365
	defaultTopLimit  = 10
	maxTopLimit      = 100
)

// dashboardService implements DashboardService.
type dashboardService struct {
	datasets       DatasetService
	summaryLatency time.Duration
	location       *time.Location
	now            func() time.Time
	logger         zerolog.Logger
}

// NewDashboardService creates a dashboard service over datasets.
// Calendar windows and busy hours are evaluated in loc.
func NewDashboardService(
	datasets DatasetService,
	summaryLatency time.Duration,
	loc *time.Location,
	logger zerolog.Logger,
) DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		datasets:       datasets,
		summaryLatency: summaryLatency,
		location:       loc,
		now:            time.Now,
		logger:         logger.With().Str("service", "dashboard").Logger(),
	}
}

// Summary returns the full dashboard payload. All parts are computed from
// one dataset generation.
func (s *dashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	if err := simulateLatency(ctx, s.summaryLatency); err != nil {
		return nil, err
	}

	ds := s.datasets.Snapshot()
	now := s.now().In(s.location)
	summary := &model.DashboardSummary{}

	g, gctx := errgroup.WithContext(ctx)
	part := func(compute func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			compute()
			return nil
		})
	}

	part(func() { summary.UserStats = stats.CalculateUserStats(ds.Customers, now) })
	part(func() { summary.OrderStats = stats.CalculateOrderStats(ds.Orders, now) })
	part(func() { summary.RecentUsers = stats.RecentCustomers(ds.Customers, recentLimit, s.location) })
	part(func() { summary.RecentOrders = stats.RecentOrders(ds.Orders, recentLimit, s.location) })
	part(func() { summary.UserTrend = stats.CustomerSignups(ds.Customers, summaryTrendDays, now) })
	part(func() { summary.OrderTrend = stats.OrderVolume(ds.Orders, summaryTrendDays, now) })
	part(func() { summary.RevenueTrend = stats.Revenue(ds.Orders, summaryTrendDays, now) })
	part(func() { summary.ServiceDistribution = stats.ServiceDistribution(ds.Orders) })
	part(func() { summary.BusyHours = stats.BusyHours(ds.Orders, s.location) })

	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Msg("dashboard summary aborted")
		return nil, err
	}

	s.logger.Debug().
		Str("generation_id", ds.GenerationID.String()).
		Int("customers", len(ds.Customers)).
		Int("orders", len(ds.Orders)).
		Msg("dashboard summary computed")

	return summary, nil
}

// UserStats returns customer growth and activity.
func (s *dashboardService) UserStats(ctx context.Context) (*model.UserStats, error) {
	customers, err := s.datasets.Users(ctx)
	if err != nil {
		return nil, err
	}
	result := stats.CalculateUserStats(customers, s.now().In(s.location))
	return &result, nil
}

// OrderStats returns order volume and revenue.
func (s *dashboardService) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	orders, err := s.datasets.Orders(ctx)
	if err != nil {
		return nil, err
	}
	result := stats.CalculateOrderStats(orders, s.now().In(s.location))
	return &result, nil
}

// Trend returns a daily series for metric over the trailing days, clamped to [1, 365].
func (s *dashboardService) Trend(ctx context.Context, metric string, days int) ([]model.TrendPoint, error) {
	days = max(1, min(days, maxTrendDays))
	now := s.now().In(s.location)

	switch metric {
	case MetricUsers:
		customers, err := s.datasets.Users(ctx)
		if err != nil {
			return nil, err
		}
		return stats.CustomerSignups(customers, days, now), nil
	case MetricOrders, MetricRevenue:
		orders, err := s.datasets.Orders(ctx)
		if err != nil {
			return nil, err
		}
		if metric == MetricOrders {
			return stats.OrderVolume(orders, days, now), nil
		}
		return stats.Revenue(orders, days, now), nil
	default:
		return nil, model.ErrUnknownMetric
	}
}

// TopServices returns the best-selling services.
func (s *dashboardService) TopServices(ctx context.Context, limit int) ([]model.ServiceStat, error) {
	orders, err := s.datasets.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return stats.TopServices(orders, topLimit(limit)), nil
}

// TopCustomers ranks customers by spend or loyalty points.
func (s *dashboardService) TopCustomers(ctx context.Context, by string, limit int) ([]model.Customer, error) {
	if by != RankBySpend && by != RankByLoyalty {
		return nil, model.ErrUnknownRanking
	}

	customers, err := s.datasets.Users(ctx)
	if err != nil {
		return nil, err
	}

	if by == RankByLoyalty {
		return stats.TopCustomersByLoyalty(customers, topLimit(limit)), nil
	}
	return stats.TopCustomersBySpend(customers, topLimit(limit)), nil
}

func topLimit(limit int) int {
	if limit < 1 {
		return defaultTopLimit
	}
	return min(limit, maxTopLimit)
}
