//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/eqtrainer/internal/adapter/llm"
	adapterrepo "github.com/eslsoft/eqtrainer/internal/adapter/repository"
	"github.com/eslsoft/eqtrainer/internal/adapter/rest"
	"github.com/eslsoft/eqtrainer/internal/catalog"
	"github.com/eslsoft/eqtrainer/internal/infrastructure/config"
	"github.com/eslsoft/eqtrainer/internal/infrastructure/database"
	"github.com/eslsoft/eqtrainer/internal/infrastructure/server"
	"github.com/eslsoft/eqtrainer/internal/repository"
	"github.com/eslsoft/eqtrainer/internal/usecase"
	"github.com/eslsoft/eqtrainer/internal/usecase/sync"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewConnection,
	adapterrepo.NewBlobStore,
	wire.Bind(new(repository.BlobStore), new(*adapterrepo.SQLiteBlobStore)),
)

var syncSet = wire.NewSet(
	sync.NewClient,
	wire.Bind(new(usecase.Pusher), new(*sync.Client)),
)

var usecaseSet = wire.NewSet(
	provideDefaultSettings,
	catalog.Load,
	usecase.NewStorageUsecase,
	usecase.NewCatalogUsecase,
	usecase.NewGamificationUsecase,
	usecase.NewAnalyticsUsecase,
)

var serviceSet = wire.NewSet(
	llm.NewClient,
	rest.NewHandler,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		syncSet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server", "Sync"),
	)
	return nil, nil, nil
}
