package snapshot

import (
	"context"
	"strings"

	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// Store both exports and loads snapshots.
type Store interface {
	Exporter
	Loader
}

// fallbackStore tries the primary store first and falls back to the secondary.
type fallbackStore struct {
	primary   Store
	secondary Store
	logger    zerolog.Logger
}

// NewFallbackStore returns a store that prefers primary and falls back to
// secondary when primary fails. A nil primary means secondary only.
func NewFallbackStore(primary, secondary Store, logger zerolog.Logger) Store {
	return &fallbackStore{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "snapshot-fallback").Logger(),
	}
}

// Export writes to the primary store, or the secondary if that fails.
func (s *fallbackStore) Export(ctx context.Context, ds *model.Dataset) (string, error) {
	if s.primary != nil {
		location, err := s.primary.Export(ctx, ds)
		if err == nil {
			return location, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn().Err(err).Msg("primary snapshot export failed, falling back")
	}
	return s.secondary.Export(ctx, ds)
}

// Load reads s3:// locations from the primary store and anything else from the secondary.
func (s *fallbackStore) Load(ctx context.Context, location string) (*model.Dataset, error) {
	if s.primary != nil && strings.HasPrefix(location, "s3://") {
		return s.primary.Load(ctx, location)
	}
	return s.secondary.Load(ctx, location)
}
