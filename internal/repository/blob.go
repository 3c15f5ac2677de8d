package repository

import "context"

// Storage keys for the four client blobs. The names are shared with the
// browser localStorage implementation and the sync wire format, so they must
// never change.
const (
	KeySettings        = "eq_settings"
	KeyHistory         = "eq_history"
	KeyFavorites       = "eq_favorites"
	KeyCustomScenarios = "eq_custom_scenarios"
)

// Keys lists the blob keys in their canonical order.
func Keys() []string {
	return []string{KeySettings, KeyHistory, KeyFavorites, KeyCustomScenarios}
}

// KnownKey reports whether key is one of the four managed blobs.
func KnownKey(key string) bool {
	switch key {
	case KeySettings, KeyHistory, KeyFavorites, KeyCustomScenarios:
		return true
	}
	return false
}

// BlobStore abstracts durable storage for the named JSON blobs to keep
// usecases storage agnostic. Get returns (nil, nil) for an absent key.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Snapshot(ctx context.Context) (map[string][]byte, error)
	Replace(ctx context.Context, blobs map[string][]byte) error
}
