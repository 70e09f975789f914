package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"QuoteLens/internal/domain/models"
	domrepo "QuoteLens/internal/domain/repository"
	"QuoteLens/internal/service/ratelimit"
)

func newHistoryUC(t *testing.T, src *fakeSource, limiter *ratelimit.Limiter) *HistoryUseCase {
	t.Helper()
	if limiter == nil {
		limiter = ratelimit.New(20, 500)
	}
	return NewHistoryUseCase(limiter, src, nopMetrics{}, testLogger(t))
}

func seriesResult(symbol string, n int) *models.ChartResult {
	res := &models.ChartResult{Meta: &models.ChartMeta{Symbol: symbol, Currency: "USD"}}
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	var q models.QuoteIndicator
	for i := 0; i < n; i++ {
		res.Timestamp = append(res.Timestamp, base+int64(i)*86400)
		q.Open = append(q.Open, fp(float64(99+i)))
		q.High = append(q.High, fp(float64(101+i)))
		q.Low = append(q.Low, fp(float64(98+i)))
		q.Close = append(q.Close, fp(float64(100+i)))
		q.Volume = append(q.Volume, fp(float64(1000*(i+1))))
	}
	res.Indicators.Quote = []models.QuoteIndicator{q}
	return res
}

func TestHistoryReport_RendersSeries(t *testing.T) {
	src := &fakeSource{fn: func(q domrepo.ChartQuery) (*models.ChartResult, error) {
		return seriesResult("AAPL", 5), nil
	}}
	uc := newHistoryUC(t, src, nil)

	out, err := uc.Report(context.Background(), "AAPL", "5d", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Historical data for AAPL (5d, 1d) in USD") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "Change over period: +4.00 (+4.00%)") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestHistoryReport_InvalidPeriodBeforeAnyCall(t *testing.T) {
	src := &fakeSource{fn: func(domrepo.ChartQuery) (*models.ChartResult, error) {
		return seriesResult("AAPL", 5), nil
	}}
	limiter := ratelimit.New(1, 500)
	uc := newHistoryUC(t, src, limiter)

	_, err := uc.Report(context.Background(), "AAPL", "1week", "1d")
	var iae *models.InvalidArgumentError
	if !errors.As(err, &iae) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	if iae.Param != "period" || iae.Value != "1week" {
		t.Errorf("unexpected argument error: %+v", iae)
	}
	if !strings.Contains(err.Error(), "1mo") {
		t.Errorf("message must name the allowed set: %v", err)
	}
	if src.calls != 0 {
		t.Errorf("invalid argument must be rejected before any fetch: %d", src.calls)
	}

	// The rejected call must not have consumed the single-call budget.
	if _, err := uc.Report(context.Background(), "AAPL", "5d", "1d"); err != nil {
		t.Fatalf("budget was consumed by the invalid call: %v", err)
	}
}

func TestHistoryReport_InvalidInterval(t *testing.T) {
	src := &fakeSource{fn: func(domrepo.ChartQuery) (*models.ChartResult, error) {
		return seriesResult("AAPL", 5), nil
	}}
	uc := newHistoryUC(t, src, nil)

	_, err := uc.Report(context.Background(), "AAPL", "1mo", "7m")
	var iae *models.InvalidArgumentError
	if !errors.As(err, &iae) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	if iae.Param != "interval" {
		t.Errorf("unexpected param: %+v", iae)
	}
}

func TestHistoryReport_DefaultsApply(t *testing.T) {
	var got domrepo.ChartQuery
	src := &fakeSource{fn: func(q domrepo.ChartQuery) (*models.ChartResult, error) {
		got = q
		return seriesResult("AAPL", 5), nil
	}}
	uc := newHistoryUC(t, src, nil)

	if _, err := uc.Report(context.Background(), "AAPL", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Interval != "1d" {
		t.Errorf("expected default interval 1d, got %q", got.Interval)
	}
	if window := got.Period2 - got.Period1; window != int64(30*24*3600) {
		t.Errorf("expected default 1mo window, got %d seconds", window)
	}
}

func TestHistoryReport_UpstreamErrorIsHard(t *testing.T) {
	src := &fakeSource{fn: func(domrepo.ChartQuery) (*models.ChartResult, error) {
		return nil, &models.UpstreamError{Status: 500, Text: "Internal Server Error"}
	}}
	uc := newHistoryUC(t, src, nil)

	_, err := uc.Report(context.Background(), "AAPL", "1mo", "1d")
	var ue *models.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("history must surface upstream failures, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("message must name the status: %v", err)
	}
}

func TestHistoryReport_NoDataIsSoft(t *testing.T) {
	src := &fakeSource{fn: func(domrepo.ChartQuery) (*models.ChartResult, error) { return nil, nil }}
	uc := newHistoryUC(t, src, nil)

	out, err := uc.Report(context.Background(), "NOPE", "1mo", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No historical data found for NOPE over period 1mo.") {
		t.Errorf("unexpected text:\n%s", out)
	}
}
