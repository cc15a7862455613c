package handler

import (
	"context"

	"chain-dashboard/internal/auth"
	"chain-dashboard/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockDatasetService is a mock implementation of service.DatasetService.
type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) Configure(ctx context.Context, userCount, orderCount int) model.GenerationConfig {
	args := m.Called(ctx, userCount, orderCount)
	return args.Get(0).(model.GenerationConfig)
}

func (m *MockDatasetService) Config() model.GenerationConfig {
	args := m.Called()
	return args.Get(0).(model.GenerationConfig)
}

func (m *MockDatasetService) Refresh(ctx context.Context) (*model.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dataset), args.Error(1)
}

func (m *MockDatasetService) Snapshot() *model.Dataset {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Dataset)
}

func (m *MockDatasetService) Users(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockDatasetService) Orders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockDatasetService) Shops(ctx context.Context) ([]model.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shop), args.Error(1)
}

func (m *MockDatasetService) Customer(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockDatasetService) Order(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockDatasetService) ListCustomers(ctx context.Context, q model.CustomerQuery) (*model.CustomerList, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerList), args.Error(1)
}

func (m *MockDatasetService) ListOrders(ctx context.Context, q model.OrderQuery) (*model.OrderList, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderList), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardSummary), args.Error(1)
}

func (m *MockDashboardService) UserStats(ctx context.Context) (*model.UserStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserStats), args.Error(1)
}

func (m *MockDashboardService) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderStats), args.Error(1)
}

func (m *MockDashboardService) Trend(ctx context.Context, metric string, days int) ([]model.TrendPoint, error) {
	args := m.Called(ctx, metric, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrendPoint), args.Error(1)
}

func (m *MockDashboardService) TopServices(ctx context.Context, limit int) ([]model.ServiceStat, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceStat), args.Error(1)
}

func (m *MockDashboardService) TopCustomers(ctx context.Context, by string, limit int) ([]model.Customer, error) {
	args := m.Called(ctx, by, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportSnapshot(ctx context.Context) (*model.ExportResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExportResult), args.Error(1)
}

func (m *MockExportService) SeedDatabase(ctx context.Context) (*model.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SeedResult), args.Error(1)
}

// MockAuthenticator is a mock implementation of auth.Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, username, password string) (*auth.Token, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockAuthenticator) Verify(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
