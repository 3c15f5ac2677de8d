package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

func newTestClient() *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(logger)
}

// chatServer replies to every completion request with content.
func chatServer(t *testing.T, content string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); !strings.HasPrefix(got, "Bearer ") {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testSettings(endpoint string) entity.Settings {
	return entity.Settings{Endpoint: endpoint, APIKey: "sk-test", Model: "test-model"}
}

func testScenario() entity.Scenario {
	return entity.Scenario{ID: "work_001", Category: "work", Title: "加薪谈判", Description: "你要求加薪被拒"}
}

func TestAnalyzeParsesFencedJSON(t *testing.T) {
	reply := "```json\n{\"score\": 85, \"pros\": [\"语气稳\"], \"zeng_quote\": \"看开不是看破\"}\n```"
	var req chatRequest
	srv := chatServer(t, reply, &req)
	defer srv.Close()

	feedback, err := newTestClient().Analyze(context.Background(), testScenario(), "我的回答", testSettings(srv.URL))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if feedback.Score != 85 {
		t.Errorf("score = %d, want 85", feedback.Score)
	}
	if feedback.ZengQuote != "看开不是看破" {
		t.Errorf("zeng_quote = %q", feedback.ZengQuote)
	}
	if feedback.Cons == nil {
		t.Error("cons not normalized to empty slice")
	}
	if req.Model != "test-model" {
		t.Errorf("model = %q, want from settings", req.Model)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
		t.Errorf("messages = %+v, want system + user", req.Messages)
	}
}

func TestAnalyzeClampsOutOfRangeScore(t *testing.T) {
	srv := chatServer(t, `{"score": 250}`, nil)
	defer srv.Close()

	feedback, err := newTestClient().Analyze(context.Background(), testScenario(), "答", testSettings(srv.URL))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if feedback.Score != 100 {
		t.Errorf("score = %d, want clamped to 100", feedback.Score)
	}
}

func TestAnalyzeMalformedReply(t *testing.T) {
	srv := chatServer(t, "我觉得你说得不错，85分吧", nil)
	defer srv.Close()

	_, err := newTestClient().Analyze(context.Background(), testScenario(), "答", testSettings(srv.URL))
	if !errors.Is(err, entity.ErrMalformedReply) {
		t.Errorf("err = %v, want ErrMalformedReply", err)
	}
}

func TestMissingAPIKey(t *testing.T) {
	settings := entity.Settings{Endpoint: "http://localhost", Model: "m"}

	_, err := newTestClient().Analyze(context.Background(), testScenario(), "答", settings)
	if !errors.Is(err, entity.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestChatPrependsPersona(t *testing.T) {
	var req chatRequest
	srv := chatServer(t, "那你觉得呢？", &req)
	defer srv.Close()

	history := []Message{
		{Role: "user", Content: "老板，我想谈谈薪资"},
		{Role: "assistant", Content: "现在不是时候"},
		{Role: "user", Content: "那什么时候合适？"},
	}
	reply, err := newTestClient().Chat(context.Background(), history, testScenario(), testSettings(srv.URL))
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "那你觉得呢？" {
		t.Errorf("reply = %q", reply)
	}
	if len(req.Messages) != 4 {
		t.Fatalf("len(messages) = %d, want persona + 3 turns", len(req.Messages))
	}
	if req.Messages[0].Role != "system" {
		t.Errorf("messages[0].role = %s, want system persona", req.Messages[0].Role)
	}
}

func TestGenerateScenarioAssignsLocalID(t *testing.T) {
	srv := chatServer(t, `{"id": "model_invented", "title": "新谈判", "description": "换个对手"}`, nil)
	defer srv.Close()

	scenario, err := newTestClient().GenerateScenario(context.Background(), testScenario(), testSettings(srv.URL))
	if err != nil {
		t.Fatalf("GenerateScenario: %v", err)
	}
	if scenario.ID == "model_invented" || !strings.HasPrefix(scenario.ID, "custom_") {
		t.Errorf("id = %q, want a locally generated custom id", scenario.ID)
	}
	if !scenario.IsCustom {
		t.Error("IsCustom not set")
	}
	if scenario.Category != "work" {
		t.Errorf("category = %q, want inherited from base", scenario.Category)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient().Analyze(context.Background(), testScenario(), "答", testSettings(srv.URL))
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("err = %v, want upstream error message surfaced", err)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient().Chat(context.Background(), nil, testScenario(), testSettings(srv.URL))
	if !errors.Is(err, entity.ErrMalformedReply) {
		t.Errorf("err = %v, want ErrMalformedReply", err)
	}
}
