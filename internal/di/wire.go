//go:build wireinject
// +build wireinject

package di

import (
	"ShopPulse/pkg/config"
	"ShopPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideRedisCache,
		ProvideKafkaProducer,

		// Repositories
		ProvideCacheService,
		ProvideReadState,
		ProvideBroadcaster,
		ProvideSettings,
		ProvideSnapshotSource,
		ProvidePassEvents,

		// Use cases
		ProvideReportUseCase,
		ProvideNotificationUseCase,
		ProvideRefreshLoop,

		// HTTP surface
		ProvideHandlers,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
