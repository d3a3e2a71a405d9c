// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/ayoisaiah/chronos/internal/models"
)

const (
	MsPerSecond = 1000
	MsPerMinute = 60 * MsPerSecond
	MsPerHour   = 60 * MsPerMinute
)

// ToMs converts a time value to epoch milliseconds.
func ToMs(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMs converts epoch milliseconds to a time value in the local zone.
func FromMs(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// Today returns the current calendar date in the session date format.
func Today() string {
	return time.Now().Format(models.DateFormat)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"invalid date %q: want format YYYY-MM-DD",
			s,
		)
	}

	return t, nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// Round2 rounds to 2 decimal places with half-up semantics.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// MsToHours expresses a millisecond count in hours.
func MsToHours(ms int64) float64 {
	return float64(ms) / float64(MsPerHour)
}

// FormatDuration formats a millisecond count as a clock-style HH:MM:SS
// string. Hours grow beyond two digits rather than wrapping.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hrs := ms / MsPerHour
	mins := (ms % MsPerHour) / MsPerMinute
	secs := (ms % MsPerMinute) / MsPerSecond

	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// FormatDurationShort formats a millisecond count compactly, e.g. "1h 30m".
// Durations under a minute render as "0m".
func FormatDurationShort(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hrs := ms / MsPerHour
	mins := (ms % MsPerHour) / MsPerMinute

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}
