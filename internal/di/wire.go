//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/DevelopLee20/Nara-Chart/pkg/config"
	"github.com/DevelopLee20/Nara-Chart/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Infrastructure clients
		ProvideBidSource,

		// Use cases
		ProvideTrendUseCase,
		ProvideRecordsUseCase,
		ProvideOptionsUseCase,

		// HTTP handler and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
