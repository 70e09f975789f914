package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"QuoteLens/internal/domain/models"
	drepo "QuoteLens/internal/domain/repository"
	xhttp "QuoteLens/pkg/http"
	applogger "QuoteLens/pkg/logger"
)

// browserHeaders mimics a desktop browser. The chart endpoint rejects
// requests that do not look like they come from one.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://finance.yahoo.com/",
	"DNT":             "1",
	"Connection":      "keep-alive",
}

// Client implements repository.ChartSource against the Yahoo Finance v8
// chart endpoint, with bounded retries and exponential backoff.
type Client struct {
	baseURL    string
	maxRetries int
	httpc      *xhttp.Client
	logger     *applogger.Logger
	metrics    drepo.Metrics

	// sleep is swapped out by tests to observe backoff without waiting.
	sleep func(time.Duration)
}

// Option configures Client.
type Option func(*Client)

// New creates a chart endpoint client.
func New(baseURL string, timeout time.Duration, maxRetries int, logger *applogger.Logger, metrics drepo.Metrics, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		maxRetries: maxRetries,
		httpc:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:     logger,
		metrics:    metrics,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSleep replaces the backoff sleep function.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = fn
	}
}

// WithHTTPClient injects a pre-built transport, primarily for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = xhttp.NewClient(xhttp.WithHTTPClient(hc))
	}
}

// GetChart fetches and decodes one ticker entry. Non-2xx statuses other
// than 429 are returned as *models.UpstreamError; exhausted retries as
// *models.FetchError. A successful response with no result entry returns
// (nil, nil).
func (c *Client) GetChart(ctx context.Context, q drepo.ChartQuery) (*models.ChartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(q.Symbol))
	params := map[string][]string{
		"period1":  {strconv.FormatInt(q.Period1, 10)},
		"period2":  {strconv.FormatInt(q.Period2, 10)},
		"interval": {q.Interval},
	}
	if q.Events != "" {
		params["events"] = []string{q.Events}
	}

	start := time.Now()
	resp, err := c.fetch(ctx, u, params)
	c.metrics.RecordFetchLatency(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &models.UpstreamError{Status: resp.StatusCode, Text: http.StatusText(resp.StatusCode)}
	}

	var chart models.ChartResponse
	if err := xhttp.DecodeJSON(resp, &chart); err != nil {
		return nil, fmt.Errorf("chart %s: %w", q.Symbol, err)
	}

	if chart.Chart.Error != nil {
		c.logger.Warn("chart api error envelope",
			applogger.String("symbol", q.Symbol),
			applogger.String("code", chart.Chart.Error.Code),
			applogger.String("description", chart.Chart.Error.Description),
		)
		return nil, nil
	}
	if len(chart.Chart.Result) == 0 {
		return nil, nil
	}
	return chart.Chart.Result[0], nil
}

// fetch runs the retry loop. Transport failures and 429 responses back off
// 2^attempt seconds and consume an attempt; any other status is returned to
// the caller as-is.
func (c *Client) fetch(ctx context.Context, rawURL string, params map[string][]string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err := c.httpc.SendRequest(ctx, &xhttp.RequestOptions{
			Method:      http.MethodGet,
			URL:         rawURL,
			Headers:     browserHeaders,
			QueryParams: params,
		})
		if err != nil {
			lastErr = err
			c.metrics.RecordRetry()
			c.logger.Warn("chart fetch failed",
				applogger.Int("attempt", attempt),
				applogger.Error(err),
			)
			c.sleep(backoff(attempt))
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			c.metrics.RecordRetry()
			c.logger.Warn("chart endpoint throttled", applogger.Int("attempt", attempt))
			c.sleep(backoff(attempt))
			continue
		}
		return resp, nil
	}
	return nil, &models.FetchError{Attempts: c.maxRetries, Err: lastErr}
}

func backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}
