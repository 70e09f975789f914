package repository

import (
	"testing"
	"time"
)

func TestIsValidPeriod(t *testing.T) {
	for _, p := range Periods {
		if !IsValidPeriod(p) {
			t.Errorf("%q must be valid", p)
		}
	}
	for _, p := range []string{"", "1week", "7d", "MAX"} {
		if IsValidPeriod(p) {
			t.Errorf("%q must be invalid", p)
		}
	}
}

func TestIsValidInterval(t *testing.T) {
	if !IsValidInterval("1wk") || !IsValidInterval("1h") {
		t.Error("expected 1wk and 1h to be valid")
	}
	if IsValidInterval("7m") || IsValidInterval("") {
		t.Error("expected 7m and empty to be invalid")
	}
}

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   time.Duration
	}{
		{"1d", 24 * time.Hour},
		{"5d", 5 * 24 * time.Hour},
		{"1mo", 30 * 24 * time.Hour},
		{"3mo", 90 * 24 * time.Hour},
		{"6mo", 180 * 24 * time.Hour},
		{"1y", 365 * 24 * time.Hour},
		{"2y", 2 * 365 * 24 * time.Hour},
		{"5y", 5 * 365 * 24 * time.Hour},
		{"10y", 10 * 365 * 24 * time.Hour},
	}
	for _, tc := range cases {
		from, to := PeriodWindow(tc.period, now)
		if !to.Equal(now) {
			t.Errorf("%s: window must end at now, got %v", tc.period, to)
		}
		if got := to.Sub(from); got != tc.want {
			t.Errorf("%s: expected span %v, got %v", tc.period, tc.want, got)
		}
	}
}

func TestPeriodWindow_YTD(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	from, _ := PeriodWindow("ytd", now)
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !from.Equal(want) {
		t.Errorf("expected Jan 1, got %v", from)
	}
}

func TestPeriodWindow_Max(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	from, _ := PeriodWindow("max", now)
	if from.Unix() != 0 {
		t.Errorf("expected epoch start, got %v", from)
	}
}
