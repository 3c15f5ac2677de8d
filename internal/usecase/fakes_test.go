package usecase

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

type fakeBlobStore struct {
	blobs  map[string][]byte
	putErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	return f.blobs[key], nil
}

func (f *fakeBlobStore) Put(_ context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeBlobStore) Snapshot(context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(f.blobs))
	for k, v := range f.blobs {
		out[k] = v
	}
	return out, nil
}

func (f *fakeBlobStore) Replace(_ context.Context, blobs map[string][]byte) error {
	for k, v := range blobs {
		f.blobs[k] = v
	}
	return nil
}

func (f *fakeBlobStore) seed(t *testing.T, key string, value any) {
	t.Helper()
	raw, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
	f.blobs[key] = raw
}

type fakePusher struct {
	calls chan struct{}
}

func newFakePusher() *fakePusher {
	return &fakePusher{calls: make(chan struct{}, 8)}
}

func (f *fakePusher) Push(context.Context) error {
	select {
	case f.calls <- struct{}{}:
	default:
	}
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testScenarios() []entity.Scenario {
	return []entity.Scenario{
		{ID: "work_001", Category: "work", Title: "加薪谈判"},
		{ID: "work_002", Category: "work", Title: "同事甩锅"},
		{ID: "emotion_001", Category: "emotion", Title: "道歉时机"},
	}
}
