package usecase

import (
	"context"
	"fmt"
	"time"

	"QuoteLens/internal/domain/models"
	domrepo "QuoteLens/internal/domain/repository"
	"QuoteLens/internal/report"
	"QuoteLens/internal/service/ratelimit"
	applogger "QuoteLens/pkg/logger"
)

const historyTool = "yahoo_stock_history"

// HistoryUseCase fetches an OHLCV series and renders the history table.
// Unlike the quote pipelines it surfaces upstream status failures as hard
// errors.
type HistoryUseCase struct {
	limiter *ratelimit.Limiter
	source  domrepo.ChartSource
	metrics domrepo.Metrics
	logger  *applogger.Logger
	now     func() time.Time
}

func NewHistoryUseCase(limiter *ratelimit.Limiter, source domrepo.ChartSource, metrics domrepo.Metrics, logger *applogger.Logger) *HistoryUseCase {
	return &HistoryUseCase{
		limiter: limiter,
		source:  source,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Report produces the history text for symbol over period at interval.
// Arguments are validated before any budget is consumed or request sent.
func (uc *HistoryUseCase) Report(ctx context.Context, symbol, period, interval string) (string, error) {
	uc.metrics.RecordToolCall(historyTool)

	if period == "" {
		period = domrepo.DefaultPeriod()
	}
	if interval == "" {
		interval = domrepo.DefaultInterval()
	}
	if !domrepo.IsValidPeriod(period) {
		uc.metrics.RecordError("invalid_argument")
		return "", &models.InvalidArgumentError{Param: "period", Value: period, Allowed: domrepo.Periods}
	}
	if !domrepo.IsValidInterval(interval) {
		uc.metrics.RecordError("invalid_argument")
		return "", &models.InvalidArgumentError{Param: "interval", Value: interval, Allowed: domrepo.Intervals}
	}

	if err := uc.limiter.Allow(); err != nil {
		uc.metrics.RecordRateLimited(historyTool)
		return "", err
	}

	from, to := domrepo.PeriodWindow(period, uc.now())
	res, err := uc.source.GetChart(ctx, domrepo.ChartQuery{
		Symbol:   symbol,
		Period1:  from.Unix(),
		Period2:  to.Unix(),
		Interval: interval,
		Events:   "div,split",
	})
	if err != nil {
		uc.metrics.RecordError("fetch")
		return "", fmt.Errorf("stock history %s: %w", symbol, err)
	}

	series := models.NewHistorySeries(symbol, res)
	if series == nil {
		uc.logger.Info("no history data",
			applogger.String("symbol", symbol),
			applogger.String("period", period),
		)
		return fmt.Sprintf("No historical data found for %s over period %s.", symbol, period), nil
	}

	text, err := report.History(series, period, interval)
	if err != nil {
		uc.metrics.RecordError("format")
		uc.logger.Error("history report failed", applogger.String("symbol", symbol), applogger.Error(err))
		return (&models.FormatError{Report: "history", Err: err}).Error(), nil
	}
	return text, nil
}
