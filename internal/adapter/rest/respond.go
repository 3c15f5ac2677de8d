package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.WithError(err).Error("encode response")
	}
}

// writeError maps domain errors onto HTTP statuses. A malformed model reply
// is surfaced as a bad gateway so the UI can tell "retry" apart from
// "reconfigure".
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrScenarioNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidScenario),
		errors.Is(err, entity.ErrInvalidHistoryItem),
		errors.Is(err, entity.ErrMissingAPIKey):
		status = http.StatusBadRequest
	case errors.Is(err, entity.ErrMalformedReply):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed")
	}
	h.writeJSON(w, status, errorBody{Error: err.Error()})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
