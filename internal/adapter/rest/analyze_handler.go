package rest

import (
	"net/http"

	"github.com/eslsoft/eqtrainer/internal/adapter/llm"
)

type analyzeRequest struct {
	ScenarioID string `json:"scenarioId"`
	Answer     string `json:"answer"`
}

// analyze scores a free-text answer. Saving the resulting history record is
// a separate POST /api/history, mirroring the original client flow.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !h.decode(w, r, &req) {
		return
	}
	scenario, err := h.catalog.ScenarioByID(r.Context(), req.ScenarioID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	feedback, err := h.llm.Analyze(r.Context(), scenario, req.Answer, h.storage.Settings(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, feedback)
}

type chatRequest struct {
	ScenarioID string        `json:"scenarioId"`
	Messages   []llm.Message `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !h.decode(w, r, &req) {
		return
	}
	scenario, err := h.catalog.ScenarioByID(r.Context(), req.ScenarioID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	reply, err := h.llm.Chat(r.Context(), req.Messages, scenario, h.storage.Settings(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
