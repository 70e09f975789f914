package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRateLimited is returned when a tool call exceeds the request budget.
// It is surfaced to the caller as-is and never retried internally.
var ErrRateLimited = errors.New("rate limit exceeded, please try again later")

// InvalidArgumentError reports a tool argument outside its allowed set.
type InvalidArgumentError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s",
		e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

// FetchError reports an exhausted retry loop against the chart endpoint.
// Err holds the last transport-level failure; it is nil when every attempt
// was answered with HTTP 429.
type FetchError struct {
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart request failed after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("maximum retries (%d) exceeded", e.Attempts)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UpstreamError reports a non-2xx, non-429 status from the chart endpoint.
// The quote and market-data pipelines downgrade it to informational text;
// the history pipeline surfaces it as a hard error.
type UpstreamError struct {
	Status int
	Text   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("yahoo api error: %d %s", e.Status, e.Text)
}

// FormatError reports a failure while shaping a payload into report text.
// Pipelines convert it into a diagnostic string; it never propagates.
type FormatError struct {
	Report string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("format %s report: %v", e.Report, e.Err)
	}
	return fmt.Sprintf("format %s report: no data", e.Report)
}

func (e *FormatError) Unwrap() error { return e.Err }
