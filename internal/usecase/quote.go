package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"QuoteLens/internal/domain/models"
	domrepo "QuoteLens/internal/domain/repository"
	"QuoteLens/internal/report"
	"QuoteLens/internal/service/ratelimit"
	applogger "QuoteLens/pkg/logger"
)

const quoteTool = "yahoo_stock_quote"

// quoteWindow is the lookback used to fetch a current snapshot; the chart
// endpoint needs a non-empty range even for a point-in-time quote.
const quoteWindow = 60 * time.Second

// QuoteUseCase fetches one ticker's current snapshot and renders it.
type QuoteUseCase struct {
	limiter *ratelimit.Limiter
	source  domrepo.ChartSource
	metrics domrepo.Metrics
	logger  *applogger.Logger
	now     func() time.Time
}

func NewQuoteUseCase(limiter *ratelimit.Limiter, source domrepo.ChartSource, metrics domrepo.Metrics, logger *applogger.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		limiter: limiter,
		source:  source,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Report produces the quote text for symbol. Upstream status failures and
// missing tickers come back as informational text with a nil error; rate
// limiting and exhausted retries are hard errors.
func (uc *QuoteUseCase) Report(ctx context.Context, symbol string) (string, error) {
	uc.metrics.RecordToolCall(quoteTool)

	if err := uc.limiter.Allow(); err != nil {
		uc.metrics.RecordRateLimited(quoteTool)
		return "", err
	}

	now := uc.now()
	res, err := uc.source.GetChart(ctx, domrepo.ChartQuery{
		Symbol:   symbol,
		Period1:  now.Add(-quoteWindow).Unix(),
		Period2:  now.Unix(),
		Interval: "1d",
	})
	if err != nil {
		var ue *models.UpstreamError
		if errors.As(err, &ue) {
			uc.metrics.RecordError("upstream")
			uc.logger.Warn("quote fetch rejected upstream",
				applogger.String("symbol", symbol),
				applogger.Int("status", ue.Status),
			)
			return fmt.Sprintf("Sorry, unable to retrieve quote data for %s right now (HTTP %d). Please try again later.", symbol, ue.Status), nil
		}
		uc.metrics.RecordError("fetch")
		return "", fmt.Errorf("stock quote %s: %w", symbol, err)
	}

	rec := models.NewQuoteRecord(symbol, res)
	if rec == nil {
		uc.logger.Info("no quote data", applogger.String("symbol", symbol))
		return fmt.Sprintf("Unable to retrieve quote data for '%s'. Please verify the ticker symbol.", symbol), nil
	}
	if rec.Price != nil {
		uc.metrics.RecordLastPrice(rec.Symbol, *rec.Price)
	}
	if rec.Degraded {
		uc.logger.Info("degraded quote snapshot", applogger.String("symbol", symbol))
	}

	text, err := report.Quote(rec)
	if err != nil {
		uc.metrics.RecordError("format")
		uc.logger.Error("quote report failed", applogger.String("symbol", symbol), applogger.Error(err))
		return (&models.FormatError{Report: "quote", Err: err}).Error(), nil
	}
	return text, nil
}
