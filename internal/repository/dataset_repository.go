package repository

import (
	"context"
	"fmt"

	"chain-dashboard/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// datasetRepository implements the DatasetRepository interface using PostgreSQL.
type datasetRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDatasetRepository creates a new PostgreSQL-backed dataset repository.
func NewDatasetRepository(pool *pgxpool.Pool, logger zerolog.Logger) DatasetRepository {
	return &datasetRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dataset").Logger(),
	}
}

// EnsureSchema creates the dataset tables when they do not exist.
func (r *datasetRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create schema")
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// BeginTx starts a new database transaction.
func (r *datasetRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Truncate removes every previously seeded row within the provided transaction.
func (r *datasetRepository) Truncate(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `TRUNCATE order_items, orders, customers, shops, generations`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to truncate dataset tables")
		return fmt.Errorf("failed to truncate dataset tables: %w", err)
	}
	return nil
}

// InsertGeneration records the metadata of the dataset being seeded.
func (r *datasetRepository) InsertGeneration(ctx context.Context, tx pgx.Tx, ds *model.Dataset) error {
	query := `
		INSERT INTO generations (id, generated_at, user_count, order_count)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, ds.GenerationID, ds.GeneratedAt, ds.Config.UserCount, ds.Config.OrderCount)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("generation_id", ds.GenerationID.String()).
			Msg("failed to insert generation")
		return fmt.Errorf("failed to insert generation: %w", err)
	}
	return nil
}

// InsertShops inserts shops within the provided transaction.
func (r *datasetRepository) InsertShops(ctx context.Context, tx pgx.Tx, shops []model.Shop) error {
	query := `
		INSERT INTO shops (id, name, address, cover_img, longitude, latitude, open_date,
			introduce, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	err := r.insertChunked(ctx, tx, "shops", len(shops), func(batch *pgx.Batch, i int) {
		s := shops[i]
		batch.Queue(query, s.ID, s.Name, s.Address, s.CoverImg, s.Longitude, s.Latitude,
			s.OpenDate, s.Introduce, int(s.Status), s.CreatedAt, s.UpdatedAt)
	})
	if err != nil {
		return err
	}

	r.logger.Debug().Int("count", len(shops)).Msg("shops inserted")
	return nil
}

// InsertCustomers inserts customers within the provided transaction.
func (r *datasetRepository) InsertCustomers(ctx context.Context, tx pgx.Tx, customers []model.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, created_at, updated_at, last_visit,
			total_spent, loyalty_points, preferred_location, gender, birthdate, age)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	err := r.insertChunked(ctx, tx, "customers", len(customers), func(batch *pgx.Batch, i int) {
		c := customers[i]
		batch.Queue(query, c.ID, c.Name, c.Phone, c.Email, c.CreatedAt, c.UpdatedAt, c.LastVisit,
			c.TotalSpent, c.LoyaltyPoints, c.PreferredLocation, c.Gender, c.Birthdate, c.Age)
	})
	if err != nil {
		return err
	}

	r.logger.Debug().Int("count", len(customers)).Msg("customers inserted")
	return nil
}

// InsertOrders inserts orders and their items within the provided transaction.
func (r *datasetRepository) InsertOrders(ctx context.Context, tx pgx.Tx, orders []model.Order) (int, error) {
	orderQuery := `
		INSERT INTO orders (id, customer_id, customer_name, total_amount, order_date, status,
			payment_method, location, staff_id, staff_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	itemQuery := `
		INSERT INTO order_items (id, order_id, name, service_type, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	err := r.insertChunked(ctx, tx, "orders", len(orders), func(batch *pgx.Batch, i int) {
		o := orders[i]
		batch.Queue(orderQuery, o.ID, o.CustomerID, o.CustomerName, o.TotalAmount, o.OrderDate,
			string(o.Status), o.PaymentMethod, o.Location, o.StaffID, o.StaffName)
	})
	if err != nil {
		return 0, err
	}

	type itemRow struct {
		orderID string
		item    model.OrderItem
	}
	var items []itemRow
	for _, o := range orders {
		for _, item := range o.Items {
			items = append(items, itemRow{orderID: o.ID, item: item})
		}
	}

	err = r.insertChunked(ctx, tx, "order_items", len(items), func(batch *pgx.Batch, i int) {
		row := items[i]
		batch.Queue(itemQuery, row.item.ID, row.orderID, row.item.Name, row.item.ServiceType,
			row.item.Price, row.item.Quantity)
	})
	if err != nil {
		return 0, err
	}

	r.logger.Debug().
		Int("orders", len(orders)).
		Int("items", len(items)).
		Msg("orders inserted")

	return len(items), nil
}

// Counts reports the rows currently stored for the latest seeded generation.
func (r *datasetRepository) Counts(ctx context.Context) (*model.SeedResult, error) {
	query := `
		SELECT
			(SELECT id FROM generations ORDER BY seeded_at DESC LIMIT 1),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM order_items),
			(SELECT COUNT(*) FROM shops)
	`

	var (
		result       model.SeedResult
		generationID *uuid.UUID
	)
	err := r.pool.QueryRow(ctx, query).Scan(
		&generationID,
		&result.Customers,
		&result.Orders,
		&result.OrderItems,
		&result.Shops,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count seeded rows")
		return nil, fmt.Errorf("failed to count seeded rows: %w", err)
	}

	if generationID != nil {
		result.GenerationID = *generationID
	}
	return &result, nil
}

// insertChunked queues n statements through queue and sends them in batches
// of at most batchSize.
func (r *datasetRepository) insertChunked(ctx context.Context, tx pgx.Tx, table string, n int, queue func(*pgx.Batch, int)) error {
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)

		batch := &pgx.Batch{}
		for i := start; i < end; i++ {
			queue(batch, i)
		}

		if err := r.sendBatch(ctx, tx, batch); err != nil {
			r.logger.Error().
				Err(err).
				Str("table", table).
				Int("offset", start).
				Msg("failed to insert batch")
			return fmt.Errorf("failed to insert %s: %w", table, err)
		}
	}
	return nil
}

func (r *datasetRepository) sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return err
		}
	}
	return results.Close()
}
