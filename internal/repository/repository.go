package repository

import (
	"context"

	"chain-dashboard/internal/model"

	"github.com/jackc/pgx/v5"
)

// DatasetRepository defines the data access operations used to seed a
// generated dataset into PostgreSQL.
type DatasetRepository interface {
	// EnsureSchema creates the dataset tables when they do not exist.
	EnsureSchema(ctx context.Context) error

	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Truncate removes every previously seeded row within the provided transaction.
	Truncate(ctx context.Context, tx pgx.Tx) error

	// InsertGeneration records the metadata of the dataset being seeded.
	InsertGeneration(ctx context.Context, tx pgx.Tx, ds *model.Dataset) error

	// InsertShops inserts shops within the provided transaction.
	InsertShops(ctx context.Context, tx pgx.Tx, shops []model.Shop) error

	// InsertCustomers inserts customers within the provided transaction.
	InsertCustomers(ctx context.Context, tx pgx.Tx, customers []model.Customer) error

	// InsertOrders inserts orders and their items within the provided transaction.
	// It returns the number of order items written.
	InsertOrders(ctx context.Context, tx pgx.Tx, orders []model.Order) (int, error)

	// Counts reports the rows currently stored for the latest seeded generation.
	Counts(ctx context.Context) (*model.SeedResult, error)
}
