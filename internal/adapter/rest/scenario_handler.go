package rest

import (
	"net/http"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.AllCategories(r.Context()))
}

func (h *Handler) getScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.AllScenarios(r.Context()))
}

func (h *Handler) getScenario(w http.ResponseWriter, r *http.Request) {
	scenario, err := h.catalog.ScenarioByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, scenario)
}

func (h *Handler) getRandomScenario(w http.ResponseWriter, r *http.Request) {
	scenario, err := h.catalog.RandomScenario(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, scenario)
}

func (h *Handler) postScenario(w http.ResponseWriter, r *http.Request) {
	var scenario entity.Scenario
	if !h.decode(w, r, &scenario) {
		return
	}
	saved, err := h.storage.SaveCustomScenario(r.Context(), scenario)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

type generateRequest struct {
	ScenarioID string `json:"scenarioId"`
}

// generateScenario asks the model for a similar scenario. The result is
// returned without saving; the client decides whether to keep it.
func (h *Handler) generateScenario(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !h.decode(w, r, &req) {
		return
	}
	base, err := h.catalog.ScenarioByID(r.Context(), req.ScenarioID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	scenario, err := h.llm.GenerateScenario(r.Context(), base, h.storage.Settings(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, scenario)
}
