package yahoo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"QuoteLens/internal/domain/models"
	drepo "QuoteLens/internal/domain/repository"
	applogger "QuoteLens/pkg/logger"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type nopMetrics struct{}

func (nopMetrics) RecordToolCall(string)           {}
func (nopMetrics) RecordError(string)              {}
func (nopMetrics) RecordRateLimited(string)        {}
func (nopMetrics) RecordRetry()                    {}
func (nopMetrics) RecordFetchLatency(float64)      {}
func (nopMetrics) RecordLastPrice(string, float64) {}

var _ drepo.Metrics = nopMetrics{}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

const chartBody = `{"chart":{"result":[{"meta":{"symbol":"AAPL","currency":"USD","regularMarketPrice":195.5,"chartPreviousClose":193.2},"timestamp":[1700000000],"indicators":{"quote":[{"open":[194.1],"high":[196.0],"low":[193.8],"close":[195.5],"volume":[1000000]}]}}],"error":null}}`

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(t *testing.T, rt roundTripFunc, sleeps *[]time.Duration) *Client {
	t.Helper()
	return New("https://example.test", 0, 3, testLogger(t), nopMetrics{},
		WithHTTPClient(&http.Client{Transport: rt}),
		WithSleep(func(d time.Duration) { *sleeps = append(*sleeps, d) }),
	)
}

func TestGetChart_RetriesTransportFailures(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if calls <= 2 {
			return nil, fmt.Errorf("connection reset")
		}
		return jsonResponse(http.StatusOK, chartBody), nil
	})
	c := newTestClient(t, rt, &sleeps)

	res, err := c.GetChart(context.Background(), drepo.ChartQuery{Symbol: "AAPL", Interval: "1d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.Meta == nil || res.Meta.Symbol != "AAPL" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(sleeps) != len(want) {
		t.Fatalf("expected %d backoff delays, got %v", len(want), sleeps)
	}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Errorf("backoff %d: expected %v, got %v", i, want[i], sleeps[i])
		}
	}
}

func TestGetChart_Exhausts429(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusTooManyRequests, ""), nil
	})
	c := newTestClient(t, rt, &sleeps)

	_, err := c.GetChart(context.Background(), drepo.ChartQuery{Symbol: "AAPL", Interval: "1d"})
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Err != nil {
		t.Errorf("pure 429 exhaustion must not carry a transport error, got %v", fe.Err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	if !strings.Contains(err.Error(), "maximum retries") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestGetChart_NonRetryableStatus(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusNotFound, "not found"), nil
	})
	c := newTestClient(t, rt, &sleeps)

	_, err := c.GetChart(context.Background(), drepo.ChartQuery{Symbol: "NOPE", Interval: "1d"})
	var ue *models.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", ue.Status)
	}
	if calls != 1 {
		t.Errorf("non-429 status must not be retried: %d attempts", calls)
	}
	if len(sleeps) != 0 {
		t.Errorf("expected no backoff, got %v", sleeps)
	}
}

func TestGetChart_EmptyResult(t *testing.T) {
	var sleeps []time.Duration
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"chart":{"result":[],"error":null}}`), nil
	})
	c := newTestClient(t, rt, &sleeps)

	res, err := c.GetChart(context.Background(), drepo.ChartQuery{Symbol: "AAPL", Interval: "1d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
}

func TestGetChart_QueryParams(t *testing.T) {
	var sleeps []time.Duration
	var gotURL string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return jsonResponse(http.StatusOK, chartBody), nil
	})
	c := newTestClient(t, rt, &sleeps)

	_, err := c.GetChart(context.Background(), drepo.ChartQuery{
		Symbol: "AAPL", Period1: 100, Period2: 200, Interval: "1d", Events: "div,split",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, part := range []string{"/v8/finance/chart/AAPL", "period1=100", "period2=200", "interval=1d"} {
		if !strings.Contains(gotURL, part) {
			t.Errorf("url %q missing %q", gotURL, part)
		}
	}
}
