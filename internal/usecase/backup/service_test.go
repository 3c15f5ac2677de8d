package backup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eslsoft/eqtrainer/internal/repository"
)

type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	return m.blobs[key], nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.blobs[key] = value
	return nil
}

func (m *memStore) Snapshot(context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(m.blobs))
	for k, v := range m.blobs {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) Replace(_ context.Context, blobs map[string][]byte) error {
	for k, v := range blobs {
		if repository.KnownKey(k) {
			m.blobs[k] = v
		}
	}
	return nil
}

func TestExportImportRoundtrip(t *testing.T) {
	ctx := context.Background()
	source := newMemStore()
	source.blobs[repository.KeyHistory] = []byte(`[{"scenarioId":"work_001","score":85}]`)
	source.blobs[repository.KeyFavorites] = []byte(`["work_001"]`)

	var buf bytes.Buffer
	if err := NewService(source).Export(ctx, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	target := newMemStore()
	if err := NewService(target).Import(ctx, &buf); err != nil {
		t.Fatalf("Import: %v", err)
	}

	for key, want := range source.blobs {
		if got := string(target.blobs[key]); got != string(want) {
			t.Errorf("blob %s = %q, want %q", key, got, want)
		}
	}
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	err := NewService(newMemStore()).Import(context.Background(),
		strings.NewReader(`{"version": 99, "blobs": {}}`))
	if err == nil || !strings.Contains(err.Error(), "unsupported format version") {
		t.Errorf("err = %v, want version error", err)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	err := NewService(newMemStore()).Import(context.Background(), strings.NewReader("not json"))
	if err == nil {
		t.Error("Import should fail on malformed input")
	}
}

func TestExportSkipsUnknownKeys(t *testing.T) {
	source := newMemStore()
	source.blobs[repository.KeySettings] = []byte(`{}`)
	source.blobs["stray"] = []byte(`x`)

	var buf bytes.Buffer
	if err := NewService(source).Export(context.Background(), &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.Contains(buf.String(), "stray") {
		t.Error("export includes keys outside the managed blob set")
	}
}
