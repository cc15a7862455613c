// Command seed generates a dataset, or loads a snapshot, and writes it to
// PostgreSQL and/or the snapshot store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chain-dashboard/internal/config"
	"chain-dashboard/internal/database"
	"chain-dashboard/internal/mockdata"
	"chain-dashboard/internal/model"
	"chain-dashboard/internal/repository"
	"chain-dashboard/internal/service"
	"chain-dashboard/internal/snapshot"

	"github.com/rs/zerolog"
)

type options struct {
	users    int
	orders   int
	seed     int64
	snapshot string
	export   bool
	database bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := options{}
	flag.IntVar(&opts.users, "users", cfg.Mock.UserCount, "number of customers to generate")
	flag.IntVar(&opts.orders, "orders", cfg.Mock.OrderCount, "number of orders to generate")
	flag.Int64Var(&opts.seed, "seed", cfg.Mock.Seed, "generator seed (0 = random)")
	flag.StringVar(&opts.snapshot, "snapshot", "", "load this snapshot (file path or s3:// URL) instead of generating")
	flag.BoolVar(&opts.export, "export", false, "write the dataset to the snapshot store")
	flag.BoolVar(&opts.database, "db", cfg.Database.Enabled, "seed the dataset into PostgreSQL")
	flag.Parse()

	if !opts.export && !opts.database {
		return fmt.Errorf("nothing to do: pass -export and/or -db")
	}

	logger := config.NewLogger(cfg.Logger).With().Str("component", "seed").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := newSnapshotStore(ctx, cfg, logger)

	ds, err := obtainDataset(ctx, cfg, opts, store, logger)
	if err != nil {
		return err
	}

	if opts.export {
		location, err := store.Export(ctx, ds)
		if err != nil {
			return fmt.Errorf("failed to export snapshot: %w", err)
		}
		fmt.Println(location)
	}

	if opts.database {
		if err := seedDatabase(ctx, cfg, ds, logger); err != nil {
			return err
		}
	}

	return nil
}

func obtainDataset(ctx context.Context, cfg *config.Config, opts options, store snapshot.Loader, logger zerolog.Logger) (*model.Dataset, error) {
	if opts.snapshot != "" {
		ds, err := store.Load(ctx, opts.snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		if err := mockdata.VerifyIntegrity(ds, model.NewValidator()); err != nil {
			return nil, fmt.Errorf("snapshot %s is inconsistent: %w", opts.snapshot, err)
		}
		logger.Info().
			Str("generation_id", ds.GenerationID.String()).
			Str("snapshot", opts.snapshot).
			Msg("snapshot loaded")
		return ds, nil
	}

	builder, err := mockdata.NewBuilder(opts.seed, mockdata.DefaultFactoryOptions(), cfg.Mock.Location(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset builder: %w", err)
	}

	ds, err := builder.Build(ctx, model.GenerationConfig{UserCount: opts.users, OrderCount: opts.orders})
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}
	return ds, nil
}

func seedDatabase(ctx context.Context, cfg *config.Config, ds *model.Dataset, logger zerolog.Logger) error {
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewDatasetRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	result, err := service.Seed(ctx, repo, ds, logger)
	if err != nil {
		return err
	}

	fmt.Printf("seeded generation %s: %d customers, %d orders, %d order items, %d shops\n",
		result.GenerationID, result.Customers, result.Orders, result.OrderItems, result.Shops)
	return nil
}

func newSnapshotStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) snapshot.Store {
	fileStore := snapshot.NewFileStore(cfg.Export.Dir, logger)
	if !cfg.S3.Enabled {
		return fileStore
	}

	s3Store, err := snapshot.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialise S3 store, using local snapshots only")
		return fileStore
	}
	return snapshot.NewFallbackStore(s3Store, fileStore, logger)
}
