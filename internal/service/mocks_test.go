package service

import (
	"context"
	"time"

	"chain-dashboard/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// refNow is a Wednesday afternoon.
var refNow = time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// fixtureDataset is a small hand-built dataset with known aggregates.
func fixtureDataset() *model.Dataset {
	day := 24 * time.Hour
	customers := []model.Customer{
		{ID: "user-1", Name: "Wang Wei", Phone: "13800000001", CreatedAt: refNow.Add(-40 * day), UpdatedAt: refNow.Add(-40 * day), TotalSpent: 500, LoyaltyPoints: 100, LastVisit: ptr(refNow.Add(-2 * time.Hour))},
		{ID: "user-2", Name: "Li Na", Phone: "13900000002", CreatedAt: refNow.Add(-10 * day), UpdatedAt: refNow.Add(-10 * day), TotalSpent: 1500.5, LoyaltyPoints: 50},
		{ID: "user-3", Name: "Zhang Min", Phone: "15000000003", CreatedAt: refNow.Add(-1 * time.Hour), UpdatedAt: refNow.Add(-1 * time.Hour), TotalSpent: 20, LoyaltyPoints: 300},
	}
	orders := []model.Order{
		{
			ID: "ORD250618100000001", CustomerID: "user-1", CustomerName: "Wang Wei", TotalAmount: 300,
			OrderDate: time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC), Status: model.OrderStatusCompleted, StaffID: "S001",
			Items: []model.OrderItem{{ID: uuid.New(), Name: "Haircut", ServiceType: "Haircut", Price: 150, Quantity: 2}},
		},
		{
			ID: "ORD250610100000002", CustomerID: "user-2", CustomerName: "Li Na", TotalAmount: 99.99,
			OrderDate: time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC), Status: model.OrderStatusPending, StaffID: "S002",
			Items: []model.OrderItem{{ID: uuid.New(), Name: "Coloring", ServiceType: "Coloring", Price: 99.99, Quantity: 1}},
		},
		{
			ID: "ORD250520100000003", CustomerID: "user-1", CustomerName: "Wang Wei", TotalAmount: 50,
			OrderDate: time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC), Status: model.OrderStatusCanceled, StaffID: "S001",
			Items: []model.OrderItem{{ID: uuid.New(), Name: "Haircut", ServiceType: "Haircut", Price: 50, Quantity: 1}},
		},
	}
	return &model.Dataset{
		GenerationID: uuid.New(),
		GeneratedAt:  refNow,
		Config:       model.DefaultGenerationConfig(),
		Customers:    customers,
		Orders:       orders,
		Shops:        []model.Shop{{ID: 1, Name: "Flagship", Status: model.ShopStatusActive}},
	}
}

// MockDatasetBuilder is a mock implementation of DatasetBuilder.
type MockDatasetBuilder struct {
	mock.Mock
}

func (m *MockDatasetBuilder) Build(ctx context.Context, cfg model.GenerationConfig) (*model.Dataset, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dataset), args.Error(1)
}

// MockDatasetService is a mock implementation of DatasetService.
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

// MockExporter is a mock implementation of snapshot.Exporter.
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, ds *model.Dataset) (string, error) {
	args := m.Called(ctx, ds)
	return args.String(0), args.Error(1)
}

// MockDatasetRepository is a mock implementation of repository.DatasetRepository.
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDatasetRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDatasetRepository) Truncate(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockDatasetRepository) InsertGeneration(ctx context.Context, tx pgx.Tx, ds *model.Dataset) error {
	return m.Called(ctx, tx, ds).Error(0)
}

func (m *MockDatasetRepository) InsertShops(ctx context.Context, tx pgx.Tx, shops []model.Shop) error {
	return m.Called(ctx, tx, shops).Error(0)
}

func (m *MockDatasetRepository) InsertCustomers(ctx context.Context, tx pgx.Tx, customers []model.Customer) error {
	return m.Called(ctx, tx, customers).Error(0)
}

func (m *MockDatasetRepository) InsertOrders(ctx context.Context, tx pgx.Tx, orders []model.Order) (int, error) {
	args := m.Called(ctx, tx, orders)
	return args.Int(0), args.Error(1)
}

func (m *MockDatasetRepository) Counts(ctx context.Context) (*model.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SeedResult), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }
