// Package snapshot writes and reads gzip-compressed JSON copies of a
// generated dataset, locally or in S3.
package snapshot

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"chain-dashboard/internal/model"
)

// Exporter persists a dataset snapshot and returns where it was written.
type Exporter interface {
	Export(ctx context.Context, ds *model.Dataset) (string, error)
}

// Loader reads a dataset snapshot back from a location returned by an Exporter.
type Loader interface {
	Load(ctx context.Context, location string) (*model.Dataset, error)
}

// Name returns the object name used for a dataset snapshot.
func Name(ds *model.Dataset) string {
	return fmt.Sprintf("dataset-%s-%s.json.gz", ds.GeneratedAt.UTC().Format("20060102T150405Z"), ds.GenerationID)
}

// Encode writes ds to w as gzip-compressed JSON.
func Encode(w io.Writer, ds *model.Dataset) error {
	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(ds); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return nil
}

// Decode reads a gzip-compressed JSON dataset from r.
func Decode(r io.Reader) (*model.Dataset, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var ds model.Dataset
	if err := json.NewDecoder(gz).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &ds, nil
}
