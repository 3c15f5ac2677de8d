// Package sync replicates the local blob set to a remote eqtrainer instance.
//
// The scheme is deliberately last-writer-wins with a single-writer
// assumption: pushes carry the full local state, and at startup the remote
// copy overwrites local state wholesale unless the remote has never seen any
// history. There is no conflict resolution and none is attempted.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/infrastructure/config"
	"github.com/eslsoft/eqtrainer/internal/repository"
)

// Client pushes and pulls the four blobs against the upstream endpoint. The
// wire format is a JSON object keyed by blob name whose values are
// JSON-encoded strings, matching the browser localStorage payloads.
type Client struct {
	endpoint   string
	store      repository.BlobStore
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient builds a sync client from config. With no endpoint configured
// the client is disabled and every call is a no-op.
func NewClient(cfg *config.Config, store repository.BlobStore, logger *logrus.Logger) *Client {
	return &Client{
		endpoint:   cfg.Sync.Endpoint,
		store:      store,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Enabled reports whether an upstream endpoint is configured.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

// Push replicates the current local state upstream. Best effort: failures
// are logged and swallowed by design, the next mutation's push carries the
// then-current state anyway.
func (c *Client) Push(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	payload, err := c.snapshotPayload(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("sync push: snapshot failed")
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.WithError(err).Warn("sync push: encode failed")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("sync push failed (offline mode?)")
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("sync push: unexpected status %d", resp.StatusCode)
		c.logger.Warn(err)
		return err
	}
	c.logger.Debug("local state synced to server")
	return nil
}

// Init reconciles remote and local state once at startup. Unreachable remote
// means pure offline mode. A remote with no history while local has some is
// treated as a first-run migration: local state is pushed up untouched.
// Otherwise every key present remotely overwrites the local copy.
func (c *Client) Init(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Info("sync init skipped (offline mode?)")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Infof("sync init skipped: status %d", resp.StatusCode)
		return nil
	}

	var remote map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		c.logger.WithError(err).Warn("sync init: decode remote payload")
		return nil
	}

	localHistory, err := c.store.Get(ctx, repository.KeyHistory)
	if err != nil {
		return err
	}

	if historyLen(remote[repository.KeyHistory]) == 0 && historyLen(string(localHistory)) > 0 {
		c.logger.Info("remote empty, uploading local data to server")
		return c.Push(ctx)
	}

	for _, key := range repository.Keys() {
		value, ok := remote[key]
		if !ok {
			continue
		}
		if err := c.store.Put(ctx, key, []byte(value)); err != nil {
			return fmt.Errorf("sync init: overwrite %s: %w", key, err)
		}
	}
	c.logger.Info("storage initialized from server")
	return nil
}

func (c *Client) snapshotPayload(ctx context.Context) (map[string]string, error) {
	blobs, err := c.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	payload := make(map[string]string, len(blobs))
	for _, key := range repository.Keys() {
		if value, ok := blobs[key]; ok {
			payload[key] = string(value)
		}
	}
	return payload, nil
}

// historyLen counts records in a JSON-encoded history blob; malformed or
// empty blobs count as zero.
func historyLen(raw string) int {
	if raw == "" {
		return 0
	}
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return 0
	}
	return len(records)
}
