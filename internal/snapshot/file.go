package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// FileStore writes snapshots to, and reads them from, a local directory.
type FileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed snapshot store rooted at dir.
func NewFileStore(dir string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger.With().Str("component", "snapshot-file").Logger(),
	}
}

// Export writes ds into the store directory. The file appears atomically.
func (s *FileStore) Export(ctx context.Context, ds *model.Dataset) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("failed to create export directory")
		return "", fmt.Errorf("failed to create export directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, Name(ds))
	tmp, err := os.CreateTemp(s.dir, ".snapshot-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in %s: %w", s.dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, ds); err != nil {
		tmp.Close()
		s.logger.Error().Err(err).Str("file", path).Msg("failed to write snapshot")
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move snapshot to %s: %w", path, err)
	}

	s.logger.Info().
		Str("file", path).
		Str("generation_id", ds.GenerationID.String()).
		Msg("snapshot written")

	return path, nil
}

// Load reads the snapshot at path.
func (s *FileStore) Load(ctx context.Context, path string) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to open snapshot")
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer file.Close()

	ds, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	s.logger.Info().
		Str("file", path).
		Int("customers", len(ds.Customers)).
		Int("orders", len(ds.Orders)).
		Msg("snapshot loaded")

	return ds, nil
}
