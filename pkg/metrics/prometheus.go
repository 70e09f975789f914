package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	toolCalls    *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	rateLimited  *prometheus.CounterVec
	retries      prometheus.Counter
	fetchLatency prometheus.Histogram
	lastPrice    *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		toolCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotelens_tool_calls_total",
				Help: "Total number of tool invocations",
			},
			[]string{"tool"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotelens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		rateLimited: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotelens_rate_limited_total",
				Help: "Total number of tool calls rejected by the rate limiter",
			},
			[]string{"tool"},
		),
		retries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "quotelens_fetch_retries_total",
				Help: "Total number of retried chart endpoint attempts",
			},
		),
		fetchLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quotelens_fetch_duration_seconds",
				Help:    "Duration of chart endpoint fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quotelens_last_price",
				Help: "Last quoted price for a symbol",
			},
			[]string{"symbol"},
		),
	}
}

// RecordToolCall records one tool invocation.
func (r *Recorder) RecordToolCall(tool string) {
	r.toolCalls.WithLabelValues(tool).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRateLimited records a rejected tool call.
func (r *Recorder) RecordRateLimited(tool string) {
	r.rateLimited.WithLabelValues(tool).Inc()
}

// RecordRetry records a retried chart endpoint attempt.
func (r *Recorder) RecordRetry() {
	r.retries.Inc()
}

// RecordFetchLatency records chart fetch duration in seconds.
func (r *Recorder) RecordFetchLatency(seconds float64) {
	r.fetchLatency.Observe(seconds)
}

// RecordLastPrice records the last quoted price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}
