// Package rest exposes the trainer's usecases as a small JSON HTTP API,
// including the blob endpoints the browser sync client talks to.
package rest

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/adapter/llm"
	"github.com/eslsoft/eqtrainer/internal/repository"
	"github.com/eslsoft/eqtrainer/internal/usecase"
)

// Handler holds the API dependencies.
type Handler struct {
	storage   usecase.StorageUsecase
	catalog   usecase.CatalogUsecase
	game      usecase.GamificationUsecase
	analytics usecase.AnalyticsUsecase
	llm       *llm.Client
	blobs     repository.BlobStore
	logger    *logrus.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	storage usecase.StorageUsecase,
	catalog usecase.CatalogUsecase,
	game usecase.GamificationUsecase,
	analytics usecase.AnalyticsUsecase,
	llmClient *llm.Client,
	blobs repository.BlobStore,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		storage:   storage,
		catalog:   catalog,
		game:      game,
		analytics: analytics,
		llm:       llmClient,
		blobs:     blobs,
		logger:    logger,
	}
}

// Routes mounts all API routes on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	// Blob sync endpoints, shared with the browser localStorage mirror.
	mux.HandleFunc("GET /api/storage", h.getStorage)
	mux.HandleFunc("POST /api/storage", h.postStorage)

	mux.HandleFunc("GET /api/settings", h.getSettings)
	mux.HandleFunc("PUT /api/settings", h.putSettings)

	mux.HandleFunc("GET /api/history", h.getHistory)
	mux.HandleFunc("POST /api/history", h.postHistory)

	mux.HandleFunc("GET /api/favorites", h.getFavorites)
	mux.HandleFunc("POST /api/favorites/{id}/toggle", h.toggleFavorite)

	mux.HandleFunc("GET /api/categories", h.getCategories)
	mux.HandleFunc("GET /api/scenarios", h.getScenarios)
	mux.HandleFunc("POST /api/scenarios", h.postScenario)
	mux.HandleFunc("GET /api/scenarios/random", h.getRandomScenario)
	mux.HandleFunc("GET /api/scenarios/{id}", h.getScenario)
	mux.HandleFunc("POST /api/scenarios/generate", h.generateScenario)

	mux.HandleFunc("GET /api/progress", h.getProgress)
	mux.HandleFunc("GET /api/achievements", h.getAchievements)
	mux.HandleFunc("GET /api/daily-challenge", h.getDailyChallenge)

	mux.HandleFunc("GET /api/stats", h.getBasicStats)
	mux.HandleFunc("GET /api/stats/categories", h.getCategoryStats)
	mux.HandleFunc("GET /api/stats/weakness", h.getWeakness)
	mux.HandleFunc("GET /api/stats/radar", h.getRadar)

	mux.HandleFunc("POST /api/analyze", h.analyze)
	mux.HandleFunc("POST /api/chat", h.chat)
}
