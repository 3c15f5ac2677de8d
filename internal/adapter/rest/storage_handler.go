package rest

import (
	"net/http"

	"github.com/eslsoft/eqtrainer/internal/entity"
	"github.com/eslsoft/eqtrainer/internal/repository"
)

// getStorage serves the full blob snapshot in the sync wire format: a JSON
// object keyed by blob name whose values are JSON-encoded strings.
func (h *Handler) getStorage(w http.ResponseWriter, r *http.Request) {
	blobs, err := h.blobs.Snapshot(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	payload := make(map[string]string, len(blobs))
	for _, key := range repository.Keys() {
		if value, ok := blobs[key]; ok {
			payload[key] = string(value)
		}
	}
	h.writeJSON(w, http.StatusOK, payload)
}

// postStorage replaces every posted key. Unknown keys are ignored.
func (h *Handler) postStorage(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	if !h.decode(w, r, &payload) {
		return
	}
	blobs := make(map[string][]byte, len(payload))
	for key, value := range payload {
		blobs[key] = []byte(value)
	}
	if err := h.blobs.Replace(r.Context(), blobs); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.storage.Settings(r.Context()))
}

func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var settings entity.Settings
	if !h.decode(w, r, &settings) {
		return
	}
	if err := h.storage.SaveSettings(r.Context(), settings); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	history := h.storage.History(r.Context())
	if history == nil {
		history = []entity.HistoryRecord{}
	}
	h.writeJSON(w, http.StatusOK, history)
}

func (h *Handler) postHistory(w http.ResponseWriter, r *http.Request) {
	var record entity.HistoryRecord
	if !h.decode(w, r, &record) {
		return
	}
	if record.CategoryID == "" {
		record.CategoryID = h.catalog.CategoryOf(r.Context(), record.ScenarioID)
	}
	saved, err := h.storage.SaveHistory(r.Context(), record)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := h.storage.Favorites(r.Context())
	if favorites == nil {
		favorites = []string{}
	}
	h.writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	added, err := h.storage.ToggleFavorite(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"favorite": added})
}
