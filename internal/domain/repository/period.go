package repository

import "time"

// Periods lists the valid history period names, in documentation order.
var Periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// Intervals lists the valid history interval names.
var Intervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}

// DefaultPeriod returns the default history period.
func DefaultPeriod() string { return "1mo" }

// DefaultInterval returns the default history interval.
func DefaultInterval() string { return "1d" }

// IsValidPeriod returns true if p is a supported period name.
func IsValidPeriod(p string) bool {
	for _, v := range Periods {
		if v == p {
			return true
		}
	}
	return false
}

// IsValidInterval returns true if iv is a supported interval name.
func IsValidInterval(iv string) bool {
	for _, v := range Intervals {
		if v == iv {
			return true
		}
	}
	return false
}

const day = 24 * time.Hour

// PeriodWindow resolves a period name to an absolute [from, to] window
// ending at now. Month and year spans are calendar approximations (30-day
// months, 365-day years); "ytd" anchors at local Jan 1 and "max" at the
// epoch. Callers must validate the period first; unknown names fall back to
// the 1mo window.
func PeriodWindow(period string, now time.Time) (time.Time, time.Time) {
	switch period {
	case "1d":
		return now.Add(-day), now
	case "5d":
		return now.Add(-5 * day), now
	case "3mo":
		return now.Add(-90 * day), now
	case "6mo":
		return now.Add(-180 * day), now
	case "1y":
		return now.Add(-365 * day), now
	case "2y":
		return now.Add(-2 * 365 * day), now
	case "5y":
		return now.Add(-5 * 365 * day), now
	case "10y":
		return now.Add(-10 * 365 * day), now
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
	case "max":
		return time.Unix(0, 0), now
	default: // 1mo
		return now.Add(-30 * day), now
	}
}
