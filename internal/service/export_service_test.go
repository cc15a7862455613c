package service

import (
	"context"
	"errors"
	"testing"

	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportService_ExportSnapshot(t *testing.T) {
	ctx := context.Background()
	ds := fixtureDataset()

	t.Run("Success", func(t *testing.T) {
		datasets := new(MockDatasetService)
		datasets.On("Snapshot").Return(ds)
		exporter := new(MockExporter)
		exporter.On("Export", ctx, ds).Return("/exports/dataset.json.gz", nil)

		svc := NewExportService(datasets, exporter, nil, zerolog.Nop())
		result, err := svc.ExportSnapshot(ctx)

		require.NoError(t, err)
		assert.Equal(t, ds.GenerationID, result.GenerationID)
		assert.Equal(t, "/exports/dataset.json.gz", result.Location)
		exporter.AssertExpectations(t)
	})

	t.Run("Exporter failure", func(t *testing.T) {
		datasets := new(MockDatasetService)
		datasets.On("Snapshot").Return(ds)
		exporter := new(MockExporter)
		exporter.On("Export", ctx, ds).Return("", errors.New("disk full"))

		svc := NewExportService(datasets, exporter, nil, zerolog.Nop())
		_, err := svc.ExportSnapshot(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to export snapshot")
	})
}

func TestExportService_SeedDatabase_Disabled(t *testing.T) {
	datasets := new(MockDatasetService)
	svc := NewExportService(datasets, new(MockExporter), nil, zerolog.Nop())

	_, err := svc.SeedDatabase(context.Background())
	assert.ErrorIs(t, err, model.ErrSeedingDisabled)
	datasets.AssertNotCalled(t, "Snapshot")
}

func TestExportService_SeedDatabase_Success(t *testing.T) {
	ctx := context.Background()
	ds := fixtureDataset()

	datasets := new(MockDatasetService)
	datasets.On("Snapshot").Return(ds)

	tx := new(MockTx)
	tx.On("Commit", ctx).Return(nil)

	repo := new(MockDatasetRepository)
	repo.On("BeginTx", ctx).Return(tx, nil)
	repo.On("Truncate", ctx, tx).Return(nil)
	repo.On("InsertGeneration", ctx, tx, ds).Return(nil)
	repo.On("InsertShops", ctx, tx, ds.Shops).Return(nil)
	repo.On("InsertCustomers", ctx, tx, ds.Customers).Return(nil)
	repo.On("InsertOrders", ctx, tx, ds.Orders).Return(3, nil)

	svc := NewExportService(datasets, new(MockExporter), repo, zerolog.Nop())
	result, err := svc.SeedDatabase(ctx)

	require.NoError(t, err)
	assert.Equal(t, ds.GenerationID, result.GenerationID)
	assert.Equal(t, 3, result.Customers)
	assert.Equal(t, 3, result.Orders)
	assert.Equal(t, 3, result.OrderItems)
	assert.Equal(t, 1, result.Shops)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
	tx.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestExportService_SeedDatabase_Rollback(t *testing.T) {
	ctx := context.Background()
	ds := fixtureDataset()

	tests := []struct {
		name  string
		setup func(repo *MockDatasetRepository, tx *MockTx)
	}{
		{
			name: "Truncate fails",
			setup: func(repo *MockDatasetRepository, tx *MockTx) {
				repo.On("Truncate", ctx, tx).Return(errors.New("lock timeout"))
			},
		},
		{
			name: "Insert orders fails",
			setup: func(repo *MockDatasetRepository, tx *MockTx) {
				repo.On("Truncate", ctx, tx).Return(nil)
				repo.On("InsertGeneration", ctx, tx, ds).Return(nil)
				repo.On("InsertShops", ctx, tx, ds.Shops).Return(nil)
				repo.On("InsertCustomers", ctx, tx, ds.Customers).Return(nil)
				repo.On("InsertOrders", ctx, tx, ds.Orders).Return(0, errors.New("constraint violation"))
			},
		},
		{
			name: "Commit fails",
			setup: func(repo *MockDatasetRepository, tx *MockTx) {
				repo.On("Truncate", ctx, tx).Return(nil)
				repo.On("InsertGeneration", ctx, tx, ds).Return(nil)
				repo.On("InsertShops", ctx, tx, ds.Shops).Return(nil)
				repo.On("InsertCustomers", ctx, tx, ds.Customers).Return(nil)
				repo.On("InsertOrders", ctx, tx, ds.Orders).Return(3, nil)
				tx.On("Commit", ctx).Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datasets := new(MockDatasetService)
			datasets.On("Snapshot").Return(ds)

			tx := new(MockTx)
			tx.On("Rollback", ctx).Return(nil)

			repo := new(MockDatasetRepository)
			repo.On("BeginTx", ctx).Return(tx, nil)
			tt.setup(repo, tx)

			svc := NewExportService(datasets, new(MockExporter), repo, zerolog.Nop())
			_, err := svc.SeedDatabase(ctx)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to seed database")
			tx.AssertCalled(t, "Rollback", ctx)
		})
	}
}

func TestExportService_SeedDatabase_BeginFails(t *testing.T) {
	ctx := context.Background()
	datasets := new(MockDatasetService)
	datasets.On("Snapshot").Return(fixtureDataset())

	repo := new(MockDatasetRepository)
	repo.On("BeginTx", ctx).Return(nil, errors.New("pool closed"))

	svc := NewExportService(datasets, new(MockExporter), repo, zerolog.Nop())
	_, err := svc.SeedDatabase(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool closed")
}
