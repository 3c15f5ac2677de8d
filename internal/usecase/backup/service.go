// Package backup dumps and restores the four client blobs as a single JSON
// document for offline safekeeping.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/eslsoft/eqtrainer/internal/repository"
)

const formatVersion = 1

var errUnsupportedVersion = errors.New("backup: unsupported format version")

type document struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Blobs      map[string]string `json:"blobs"`
}

// Service reads and writes backups against a blob store.
type Service struct {
	store repository.BlobStore
}

// NewService constructs a backup service bound to the provided store.
func NewService(store repository.BlobStore) *Service {
	return &Service{store: store}
}

// Export writes the current blob snapshot to w.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	blobs, err := s.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("backup export: %w", err)
	}

	doc := document{
		Version:    formatVersion,
		ExportedAt: time.Now().UTC(),
		Blobs:      make(map[string]string, len(blobs)),
	}
	for _, key := range repository.Keys() {
		if value, ok := blobs[key]; ok {
			doc.Blobs[key] = string(value)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("backup export: encode: %w", err)
	}
	return nil
}

// Import restores blobs from a backup document, overwriting local copies of
// every key the document carries.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("backup import: decode: %w", err)
	}
	if doc.Version != formatVersion {
		return fmt.Errorf("%w: %d", errUnsupportedVersion, doc.Version)
	}

	blobs := make(map[string][]byte, len(doc.Blobs))
	for key, value := range doc.Blobs {
		blobs[key] = []byte(value)
	}
	if err := s.store.Replace(ctx, blobs); err != nil {
		return fmt.Errorf("backup import: %w", err)
	}
	return nil
}
