package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chain-dashboard/internal/auth"
	"chain-dashboard/internal/config"
	"chain-dashboard/internal/database"
	"chain-dashboard/internal/handler"
	"chain-dashboard/internal/middleware"
	"chain-dashboard/internal/mockdata"
	"chain-dashboard/internal/model"
	"chain-dashboard/internal/repository"
	"chain-dashboard/internal/router"
	"chain-dashboard/internal/service"
	"chain-dashboard/internal/snapshot"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Auth.Validate(); err != nil {
		return fmt.Errorf("invalid auth configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting chain-dashboard API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc := cfg.Mock.Location()

	// Database is only a seed target; without it seeding reports 503.
	var repo repository.DatasetRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		datasetRepo := repository.NewDatasetRepository(pool, logger)
		if err := datasetRepo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
		repo = datasetRepo
	} else {
		logger.Info().Msg("database disabled, seeding endpoint unavailable")
	}

	store := newSnapshotStore(ctx, cfg, logger)

	// Initialize dataset generation
	builder, err := mockdata.NewBuilder(cfg.Mock.Seed, mockdata.DefaultFactoryOptions(), loc, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dataset builder: %w", err)
	}

	generation := model.GenerationConfig{UserCount: cfg.Mock.UserCount, OrderCount: cfg.Mock.OrderCount}

	// Initialize services
	datasetService, err := service.NewDatasetService(ctx, builder, generation, cfg.Mock.ReadLatency, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dataset: %w", err)
	}
	dashboardService := service.NewDashboardService(datasetService, cfg.Mock.SummaryLatency, loc, logger)
	exportService := service.NewExportService(datasetService, store, repo, logger)

	authenticator, err := auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, auth.DefaultCredentials(), bcrypt.DefaultCost, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize authenticator: %w", err)
	}

	// Initialize HTTP handlers
	validate := model.NewValidator()
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authenticator, logger),
		Dashboard: handler.NewDashboardHandler(dashboardService, logger),
		Customer:  handler.NewCustomerHandler(datasetService, dashboardService, validate, loc, logger),
		Order:     handler.NewOrderHandler(datasetService, validate, loc, logger),
		Dataset:   handler.NewDatasetHandler(datasetService, exportService, logger),
		SSE:       handler.NewSSEHandler(dashboardService, cfg.Server.PushInterval, logger),
	}

	opts := router.Options{APIKey: cfg.Auth.APIKey, Authenticator: authenticator}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Initialize router
	mux := router.New(handlers, opts, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Open SSE streams end with the base context.
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSnapshotStore writes snapshots to S3 when enabled, falling back to the
// local export directory.
func newSnapshotStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) snapshot.Store {
	fileStore := snapshot.NewFileStore(cfg.Export.Dir, logger)

	if !cfg.S3.Enabled {
		logger.Info().Str("dir", cfg.Export.Dir).Msg("using local file system for snapshots (S3 disabled)")
		return fileStore
	}

	s3Store, err := snapshot.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 store, falling back to local file system only")
		return fileStore
	}

	return snapshot.NewFallbackStore(s3Store, fileStore, logger)
}
