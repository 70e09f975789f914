package repository

import (
	"context"

	"QuoteLens/internal/domain/models"
)

// ChartQuery identifies one chart endpoint request. Period1 and Period2 are
// unix seconds bounding the requested window.
type ChartQuery struct {
	Symbol   string
	Period1  int64
	Period2  int64
	Interval string
	Events   string
}

// ChartSource fetches a single ticker entry from the chart endpoint.
// A (nil, nil) return means the upstream answered successfully but carried
// no result entry for the symbol.
type ChartSource interface {
	GetChart(ctx context.Context, q ChartQuery) (*models.ChartResult, error)
}

// Metrics records tool-level counters and upstream fetch telemetry.
type Metrics interface {
	RecordToolCall(tool string)
	RecordError(kind string)
	RecordRateLimited(tool string)
	RecordRetry()
	RecordFetchLatency(seconds float64)
	RecordLastPrice(symbol string, price float64)
}
