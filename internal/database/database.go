package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chain-dashboard/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ErrDisabled is returned when a pool is requested while DB_ENABLED is false.
var ErrDisabled = errors.New("database is disabled")

const (
	pingAttempts = 5
	pingBackoff  = 500 * time.Millisecond
)

// NewPool creates the pool for the seed target and waits until the server
// answers a ping, retrying with a doubling backoff.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	poolConfig, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger = logger.With().Str("component", "database").Logger()
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Msg("connecting to seed database")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := ping(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info().Msg("seed database ready")
	return pool, nil
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	return poolConfig, nil
}

func ping(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	backoff := pingBackoff

	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}
		if attempt == pingAttempts {
			break
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", backoff).
			Msg("database not reachable yet")

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("failed to ping database after %d attempts: %w", pingAttempts, err)
}
