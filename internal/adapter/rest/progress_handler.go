package rest

import "net/http"

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.game.LevelProgress(h.storage.History(r.Context())))
}

func (h *Handler) getAchievements(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.game.Achievements(h.storage.History(r.Context())))
}

func (h *Handler) getDailyChallenge(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]int{"seed": h.game.DailyChallenge()})
}

func (h *Handler) getBasicStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.analytics.BasicStats(r.Context()))
}

func (h *Handler) getCategoryStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.analytics.CategoryStats(r.Context()))
}

func (h *Handler) getWeakness(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.analytics.Weakness(r.Context()))
}

func (h *Handler) getRadar(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.analytics.RadarData(r.Context()))
}
