package ratelimit

import (
	"sync"
	"time"

	"QuoteLens/internal/domain/models"
)

// Limiter counts calls in two fixed windows (one minute, one day) and
// rejects calls once either threshold is reached. Windows are not sliding:
// a window reset zeroes its counter and re-anchors the start to now, so
// bursts near a reset edge can briefly exceed the nominal rate. That
// imprecision is accepted behavior.
type Limiter struct {
	mu  sync.Mutex
	now func() time.Time

	perMinute int
	perDay    int

	minuteCount int
	dayCount    int
	minuteStart time.Time
	dayStart    time.Time
}

// New creates a Limiter with the given per-minute and per-day budgets.
func New(perMinute, perDay int) *Limiter {
	now := time.Now()
	return &Limiter{
		now:         time.Now,
		perMinute:   perMinute,
		perDay:      perDay,
		minuteStart: now,
		dayStart:    now,
	}
}

// Allow checks both windows and increments both counters on success.
// It returns models.ErrRateLimited without incrementing when either budget
// is exhausted.
func (l *Limiter) Allow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.minuteStart) > time.Minute {
		l.minuteCount = 0
		l.minuteStart = now
	}
	if now.Sub(l.dayStart) > 24*time.Hour {
		l.dayCount = 0
		l.dayStart = now
	}

	if l.minuteCount >= l.perMinute || l.dayCount >= l.perDay {
		return models.ErrRateLimited
	}

	l.minuteCount++
	l.dayCount++
	return nil
}
