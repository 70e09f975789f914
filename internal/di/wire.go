//go:build wireinject
// +build wireinject

package di

import (
	"QuoteLens/pkg/config"
	"QuoteLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Request governance + upstream client
		ProvideLimiter,
		ProvideChartSource,

		// Tool pipelines
		ProvideQuoteUseCase,
		ProvideMarketUseCase,
		ProvideHistoryUseCase,

		// HTTP boundary
		ProvideToolsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
