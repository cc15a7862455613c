package service

import (
	"context"

	"chain-dashboard/internal/model"
)

// DatasetBuilder produces a complete dataset for a generation config.
type DatasetBuilder interface {
	Build(ctx context.Context, cfg model.GenerationConfig) (*model.Dataset, error)
}

// DatasetService owns the single in-memory dataset slot.
type DatasetService interface {
	// Configure clamps and stores the population sizes used by the next Refresh.
	Configure(ctx context.Context, userCount, orderCount int) model.GenerationConfig

	// Config returns the stored generation config.
	Config() model.GenerationConfig

	// Refresh regenerates the dataset from the stored config and replaces it wholesale.
	Refresh(ctx context.Context) (*model.Dataset, error)

	// Snapshot returns the currently published dataset.
	Snapshot() *model.Dataset

	// Users returns the customers of the current dataset.
	Users(ctx context.Context) ([]model.Customer, error)

	// Orders returns the orders of the current dataset.
	Orders(ctx context.Context) ([]model.Order, error)

	// Shops returns the shops of the current dataset.
	Shops(ctx context.Context) ([]model.Shop, error)

	// Customer looks up a customer by ID.
	Customer(ctx context.Context, id string) (*model.Customer, error)

	// Order looks up an order by ID.
	Order(ctx context.Context, id string) (*model.Order, error)

	// ListCustomers filters, sorts and pages customers.
	ListCustomers(ctx context.Context, q model.CustomerQuery) (*model.CustomerList, error)

	// ListOrders filters, sorts and pages orders.
	ListOrders(ctx context.Context, q model.OrderQuery) (*model.OrderList, error)
}

// Trend metrics.
const (
	MetricUsers   = "users"
	MetricOrders  = "orders"
	MetricRevenue = "revenue"
)

// Top customer rankings.
const (
	RankBySpend   = "spend"
	RankByLoyalty = "loyalty"
)

// DashboardService computes aggregates over the current dataset on every call.
type DashboardService interface {
	// Summary returns the full dashboard payload.
	Summary(ctx context.Context) (*model.DashboardSummary, error)

	// UserStats returns customer growth and activity.
	UserStats(ctx context.Context) (*model.UserStats, error)

	// OrderStats returns order volume and revenue.
	OrderStats(ctx context.Context) (*model.OrderStats, error)

	// Trend returns a daily series for metric over the trailing days.
	Trend(ctx context.Context, metric string, days int) ([]model.TrendPoint, error)

	// TopServices returns the best-selling services.
	TopServices(ctx context.Context, limit int) ([]model.ServiceStat, error)

	// TopCustomers ranks customers by spend or loyalty points.
	TopCustomers(ctx context.Context, by string, limit int) ([]model.Customer, error)
}

// ExportService copies the current dataset out of process.
type ExportService interface {
	// ExportSnapshot writes the current dataset as a snapshot and returns its location.
	ExportSnapshot(ctx context.Context) (*model.ExportResult, error)

	// SeedDatabase replaces the database contents with the current dataset.
	SeedDatabase(ctx context.Context) (*model.SeedResult, error)
}
