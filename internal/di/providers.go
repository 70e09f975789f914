package di

import (
	"fmt"

	"QuoteLens/internal/domain/repository"
	"QuoteLens/internal/handler/api"
	"QuoteLens/internal/service/ratelimit"
	"QuoteLens/internal/service/yahoo"
	"QuoteLens/internal/usecase"
	"QuoteLens/pkg/config"
	xhttp "QuoteLens/pkg/http"
	applogger "QuoteLens/pkg/logger"
	"QuoteLens/pkg/metrics"
	"QuoteLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideLimiter creates the shared tool-call rate limiter.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.PerMinute, cfg.RateLimit.PerDay)
}

// ProvideChartSource creates the Yahoo Finance chart client.
func ProvideChartSource(cfg *config.Config, logger *applogger.Logger, m repository.Metrics) repository.ChartSource {
	return yahoo.New(cfg.Yahoo.BaseURL, cfg.Yahoo.Timeout, cfg.Yahoo.MaxRetries, logger, m)
}

// ProvideQuoteUseCase creates the stock quote pipeline.
func ProvideQuoteUseCase(limiter *ratelimit.Limiter, source repository.ChartSource, m repository.Metrics, logger *applogger.Logger) *usecase.QuoteUseCase {
	return usecase.NewQuoteUseCase(limiter, source, m, logger)
}

// ProvideMarketUseCase creates the market data pipeline.
func ProvideMarketUseCase(limiter *ratelimit.Limiter, source repository.ChartSource, m repository.Metrics, logger *applogger.Logger) *usecase.MarketUseCase {
	return usecase.NewMarketUseCase(limiter, source, m, logger)
}

// ProvideHistoryUseCase creates the stock history pipeline.
func ProvideHistoryUseCase(limiter *ratelimit.Limiter, source repository.ChartSource, m repository.Metrics, logger *applogger.Logger) *usecase.HistoryUseCase {
	return usecase.NewHistoryUseCase(limiter, source, m, logger)
}

// ProvideToolsHandler creates the HTTP tool handler.
func ProvideToolsHandler(logger *applogger.Logger, quote *usecase.QuoteUseCase, market *usecase.MarketUseCase, history *usecase.HistoryUseCase) xhttp.Handler {
	return api.NewToolsEchoHandler(logger, quote, market, history)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
