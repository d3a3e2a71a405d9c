package timeutil_test

import (
	"testing"

	"github.com/ayoisaiah/chronos/internal/timeutil"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{999, "00:00:00"},
		{1000, "00:00:01"},
		{90 * timeutil.MsPerMinute, "01:30:00"},
		{5400000 + 5*timeutil.MsPerSecond, "01:30:05"},
		{25 * timeutil.MsPerHour, "25:00:00"},
		{-1, "00:00:00"},
	}

	for _, tc := range cases {
		if got := timeutil.FormatDuration(tc.ms); got != tc.want {
			t.Errorf(
				"Expected %q for %dms, but got: %q",
				tc.want,
				tc.ms,
				got,
			)
		}
	}
}

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0m"},
		{30 * timeutil.MsPerSecond, "0m"},
		{45 * timeutil.MsPerMinute, "45m"},
		{90 * timeutil.MsPerMinute, "1h 30m"},
		{4 * timeutil.MsPerHour, "4h 0m"},
		{-5, "0m"},
	}

	for _, tc := range cases {
		if got := timeutil.FormatDurationShort(tc.ms); got != tc.want {
			t.Errorf(
				"Expected %q for %dms, but got: %q",
				tc.want,
				tc.ms,
				got,
			)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2024, 366},
		{2025, 365},
		{2026, 365},
		{2028, 366},
		{2100, 365}, // century, not a leap year
		{2000, 366}, // but divisible by 400 is
	}

	for _, tc := range cases {
		if got := timeutil.DaysInYear(tc.year); got != tc.want {
			t.Errorf(
				"Expected %d days in %d, but got: %d",
				tc.want,
				tc.year,
				got,
			)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := timeutil.ParseDate("2026-03-01"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	for _, s := range []string{"03/01/2026", "2026-3-1", "yesterday", ""} {
		if _, err := timeutil.ParseDate(s); err == nil {
			t.Errorf("Expected an error for %q", s)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.7333333, 2.73},
		{2.736, 2.74},
		{0.875, 0.88}, // exact half rounds up
		{0, 0},
	}

	for _, tc := range cases {
		if got := timeutil.Round2(tc.in); got != tc.want {
			t.Errorf("Expected %v for %v, but got: %v", tc.want, tc.in, got)
		}
	}
}
