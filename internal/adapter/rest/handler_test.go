package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/adapter/llm"
	"github.com/eslsoft/eqtrainer/internal/entity"
	"github.com/eslsoft/eqtrainer/internal/repository"
	"github.com/eslsoft/eqtrainer/internal/usecase"
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

var testBuiltin = []entity.Scenario{
	{ID: "work_001", Category: "work", Title: "加薪谈判", Description: "你要求加薪被拒"},
	{ID: "emotion_001", Category: "emotion", Title: "道歉时机"},
}

func newTestMux(t *testing.T, store *memStore) *http.ServeMux {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	defaults := entity.Settings{Endpoint: "http://unset", Model: "test-model"}
	storage := usecase.NewStorageUsecase(store, nil, defaults, logger)
	cat := usecase.NewCatalogUsecase(testBuiltin, storage)
	game := usecase.NewGamificationUsecase()
	analytics := usecase.NewAnalyticsUsecase(storage, cat)
	handler := NewHandler(storage, cat, game, analytics, llm.NewClient(logger), store, logger)

	mux := http.NewServeMux()
	handler.Routes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestStorageRoundtrip(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	payload := `{"eq_history":"[{\"scenarioId\":\"work_001\"}]","eq_favorites":"[\"work_001\"]","rogue":"x"}`
	rec := doJSON(t, mux, http.MethodPost, "/api/storage", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/storage = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/storage", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/storage = %d", rec.Code)
	}
	var got map[string]string
	decodeBody(t, rec, &got)
	if got["eq_history"] != `[{"scenarioId":"work_001"}]` {
		t.Errorf("eq_history = %q", got["eq_history"])
	}
	if _, ok := got["rogue"]; ok {
		t.Error("unknown key survived the storage roundtrip")
	}
}

func TestPostHistoryFillsCategory(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodPost, "/api/history",
		`{"scenarioId":"work_001","scenarioTitle":"加薪谈判","score":88}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/history = %d: %s", rec.Code, rec.Body.String())
	}

	var saved entity.HistoryRecord
	decodeBody(t, rec, &saved)
	if saved.CategoryID != "work" {
		t.Errorf("categoryId = %q, want resolved from catalog", saved.CategoryID)
	}
	if saved.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestPostHistoryRejectsMissingScenario(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodPost, "/api/history", `{"score":88}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestToggleFavoriteEndpoint(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodPost, "/api/favorites/work_001/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]bool
	decodeBody(t, rec, &got)
	if !got["favorite"] {
		t.Error("first toggle should report favorite=true")
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/favorites/work_001/toggle", "")
	decodeBody(t, rec, &got)
	if got["favorite"] {
		t.Error("second toggle should report favorite=false")
	}
}

func TestGetScenarioNotFound(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodGet, "/api/scenarios/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetRandomScenarioByCategory(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodGet, "/api/scenarios/random?category=emotion", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got entity.Scenario
	decodeBody(t, rec, &got)
	if got.Category != "emotion" {
		t.Errorf("category = %q, want emotion", got.Category)
	}
}

func TestPostScenarioValidation(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodPost, "/api/scenarios", `{"title":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for blank title", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/scenarios", `{"title":"新场景"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var saved entity.Scenario
	decodeBody(t, rec, &saved)
	if !saved.IsCustom || saved.ID == "" {
		t.Errorf("saved = %+v, want custom scenario with id", saved)
	}
}

func TestProgressEndpoint(t *testing.T) {
	store := newMemStore()
	store.blobs[repository.KeyHistory] = []byte(`[{"scenarioId":"work_001","score":100},{"scenarioId":"work_001","score":100},{"scenarioId":"work_001","score":100}]`)
	mux := newTestMux(t, store)

	rec := doJSON(t, mux, http.MethodGet, "/api/progress", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got entity.LevelProgress
	decodeBody(t, rec, &got)
	if got.Level != 2 {
		t.Errorf("level = %d, want 2 at 600 XP", got.Level)
	}
}

func TestDailyChallengeEndpoint(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodGet, "/api/daily-challenge", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]int
	decodeBody(t, rec, &got)
	if got["seed"] < 0 {
		t.Errorf("seed = %d, want non-negative", got["seed"])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"score\":77,\"pros\":[\"不错\"]}"}}]}`))
	}))
	defer upstream.Close()

	store := newMemStore()
	settings, _ := json.Marshal(entity.Settings{Endpoint: upstream.URL, APIKey: "sk-test", Model: "m"})
	store.blobs[repository.KeySettings] = settings
	mux := newTestMux(t, store)

	rec := doJSON(t, mux, http.MethodPost, "/api/analyze", `{"scenarioId":"work_001","answer":"我的回答"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var feedback entity.Feedback
	decodeBody(t, rec, &feedback)
	if feedback.Score != 77 {
		t.Errorf("score = %d, want 77", feedback.Score)
	}
}

func TestAnalyzeWithoutAPIKey(t *testing.T) {
	mux := newTestMux(t, newMemStore())

	rec := doJSON(t, mux, http.MethodPost, "/api/analyze", `{"scenarioId":"work_001","answer":"答"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without api key", rec.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"你先冷静一下。"}}]}`))
	}))
	defer upstream.Close()

	store := newMemStore()
	settings, _ := json.Marshal(entity.Settings{Endpoint: upstream.URL, APIKey: "sk-test", Model: "m"})
	store.blobs[repository.KeySettings] = settings
	mux := newTestMux(t, store)

	rec := doJSON(t, mux, http.MethodPost, "/api/chat",
		`{"scenarioId":"work_001","messages":[{"role":"user","content":"老板你好"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got map[string]string
	decodeBody(t, rec, &got)
	if got["reply"] != "你先冷静一下。" {
		t.Errorf("reply = %q", got["reply"])
	}
}
