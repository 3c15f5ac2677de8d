package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/eqtrainer/internal/entity"
	"github.com/eslsoft/eqtrainer/internal/infrastructure/config"
	"github.com/eslsoft/eqtrainer/internal/infrastructure/server"
	"github.com/eslsoft/eqtrainer/internal/usecase/sync"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger *logrus.Logger
	Server *server.Server
	Sync   *sync.Client
}

// provideDefaultSettings lifts the configured LLM defaults into the settings
// shape the storage usecase falls back to.
func provideDefaultSettings(cfg *config.Config) entity.Settings {
	return entity.Settings{
		Endpoint: cfg.LLM.Endpoint,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
	}
}
