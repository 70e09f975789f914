package usecase

import (
	"context"
	"testing"

	"QuoteLens/internal/domain/models"
	domrepo "QuoteLens/internal/domain/repository"
	applogger "QuoteLens/pkg/logger"
)

type fakeSource struct {
	calls   int
	symbols []string
	fn      func(q domrepo.ChartQuery) (*models.ChartResult, error)
}

func (f *fakeSource) GetChart(_ context.Context, q domrepo.ChartQuery) (*models.ChartResult, error) {
	f.calls++
	f.symbols = append(f.symbols, q.Symbol)
	return f.fn(q)
}

type nopMetrics struct{}

func (nopMetrics) RecordToolCall(string)           {}
func (nopMetrics) RecordError(string)              {}
func (nopMetrics) RecordRateLimited(string)        {}
func (nopMetrics) RecordRetry()                    {}
func (nopMetrics) RecordFetchLatency(float64)      {}
func (nopMetrics) RecordLastPrice(string, float64) {}

var _ domrepo.Metrics = nopMetrics{}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func fp(v float64) *float64 { return &v }

func metaResult(symbol, name string, price, prevClose float64) *models.ChartResult {
	return &models.ChartResult{
		Meta: &models.ChartMeta{
			Symbol:             symbol,
			LongName:           name,
			RegularMarketPrice: fp(price),
			ChartPreviousClose: fp(prevClose),
		},
	}
}
