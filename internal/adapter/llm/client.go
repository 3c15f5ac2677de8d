// Package llm talks to a chat-completions style endpoint for answer scoring,
// persona roleplay and scenario generation.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

// Message is one turn of a chat-completions conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// Client calls the endpoint configured in the user's settings. The endpoint,
// key and model travel with every call because the user can change them at
// any time.
type Client struct {
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient builds a client with a generous timeout; model calls are slow.
func NewClient(logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     logger,
	}
}

// Analyze scores a free-text answer against a scenario and returns the
// structured feedback.
func (c *Client) Analyze(ctx context.Context, scenario entity.Scenario, answer string, settings entity.Settings) (*entity.Feedback, error) {
	messages := []Message{
		{Role: "system", Content: analyzeSystemPrompt()},
		{Role: "user", Content: analyzeUserMessage(scenario, answer)},
	}
	content, err := c.complete(ctx, settings, messages, 0.7)
	if err != nil {
		return nil, err
	}

	var feedback entity.Feedback
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &feedback); err != nil {
		c.logger.WithError(err).Warn("analyze: model reply is not valid JSON")
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedReply, err)
	}
	feedback.Normalize()
	return &feedback, nil
}

// Chat continues a persona roleplay conversation and returns the persona's
// next line verbatim.
func (c *Client) Chat(ctx context.Context, history []Message, scenario entity.Scenario, settings entity.Settings) (string, error) {
	messages := append([]Message{{Role: "system", Content: personaSystemPrompt(scenario)}}, history...)
	return c.complete(ctx, settings, messages, 0.7)
}

// GenerateScenario asks the model for a fresh scenario with the same core
// conflict as base. The returned scenario always gets a locally generated id
// regardless of what the model produced.
func (c *Client) GenerateScenario(ctx context.Context, base entity.Scenario, settings entity.Settings) (*entity.Scenario, error) {
	messages := []Message{
		{Role: "system", Content: generateSystemPrompt(base)},
		{Role: "user", Content: generateUserMessage(base)},
	}
	// Slightly higher temperature for creativity.
	content, err := c.complete(ctx, settings, messages, 0.8)
	if err != nil {
		return nil, err
	}

	var scenario entity.Scenario
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &scenario); err != nil {
		c.logger.WithError(err).Warn("generate: model reply is not valid JSON")
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedReply, err)
	}
	scenario.ID = entity.NewScenarioID()
	scenario.IsCustom = true
	if scenario.Category == "" {
		scenario.Category = base.Category
	}
	return &scenario, nil
}

func (c *Client) complete(ctx context.Context, settings entity.Settings, messages []Message, temperature float64) (string, error) {
	if settings.APIKey == "" {
		return "", entity.ErrMissingAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model:       settings.Model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, settings.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+settings.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var failure chatResponse
		_ = json.Unmarshal(raw, &failure)
		if failure.Error != nil && failure.Error.Message != "" {
			return "", fmt.Errorf("chat completion: status %d: %s", resp.StatusCode, failure.Error.Message)
		}
		return "", fmt.Errorf("chat completion: status %d", resp.StatusCode)
	}

	var reply chatResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrMalformedReply, err)
	}
	if len(reply.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", entity.ErrMalformedReply)
	}
	return reply.Choices[0].Message.Content, nil
}

// stripCodeFence unwraps replies the model insists on fencing as
// ```json ... ``` despite instructions.
func stripCodeFence(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
