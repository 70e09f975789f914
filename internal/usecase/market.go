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

const marketTool = "yahoo_market_data"

// DefaultIndices is the index set fetched when the caller names none.
var DefaultIndices = []string{"^GSPC", "^DJI", "^IXIC"}

// MarketUseCase fetches a batch of index snapshots, strictly sequentially,
// and renders one block per index.
type MarketUseCase struct {
	limiter *ratelimit.Limiter
	source  domrepo.ChartSource
	metrics domrepo.Metrics
	logger  *applogger.Logger
	now     func() time.Time
}

func NewMarketUseCase(limiter *ratelimit.Limiter, source domrepo.ChartSource, metrics domrepo.Metrics, logger *applogger.Logger) *MarketUseCase {
	return &MarketUseCase{
		limiter: limiter,
		source:  source,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Report fetches each index in order. A per-index failure is logged and
// skipped; models.ErrRateLimited aborts the batch because it applies to the
// caller, not to one index. An empty result set yields informational text.
func (uc *MarketUseCase) Report(ctx context.Context, indices []string) (string, error) {
	uc.metrics.RecordToolCall(marketTool)
	if len(indices) == 0 {
		indices = DefaultIndices
	}

	records := make([]*models.IndexRecord, 0, len(indices))
	for _, idx := range indices {
		rec, err := uc.fetchIndex(ctx, idx)
		if err != nil {
			if errors.Is(err, models.ErrRateLimited) {
				uc.metrics.RecordRateLimited(marketTool)
				return "", err
			}
			uc.metrics.RecordError("index_fetch")
			uc.logger.Warn("index fetch skipped",
				applogger.String("index", idx),
				applogger.Error(err),
			)
			continue
		}
		if rec == nil {
			uc.logger.Warn("index returned no data", applogger.String("index", idx))
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return "Sorry, unable to retrieve market data at this time. Please try again later.", nil
	}

	text, err := report.Indices(records)
	if err != nil {
		uc.metrics.RecordError("format")
		uc.logger.Error("market report failed", applogger.Error(err))
		return (&models.FormatError{Report: "market", Err: err}).Error(), nil
	}
	return text, nil
}

func (uc *MarketUseCase) fetchIndex(ctx context.Context, symbol string) (*models.IndexRecord, error) {
	if err := uc.limiter.Allow(); err != nil {
		return nil, err
	}

	now := uc.now()
	res, err := uc.source.GetChart(ctx, domrepo.ChartQuery{
		Symbol:   symbol,
		Period1:  now.Add(-quoteWindow).Unix(),
		Period2:  now.Unix(),
		Interval: "1d",
	})
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", symbol, err)
	}
	return models.NewIndexRecord(symbol, res), nil
}
