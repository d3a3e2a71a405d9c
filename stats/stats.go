// Package stats derives calendar and time-series views from study
// sessions. Everything here is a pure function over a snapshot of the
// completed sessions, the active session, and the current time.
package stats

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
)

// Tier classifies a day's total study time to drive the visual weight of
// its calendar cell.
type Tier int

const (
	TierNone Tier = iota
	TierLow
	TierMedium
	TierHigh
)

// Timeframe is the bucketing granularity of the evolution series.
type Timeframe string

const (
	TimeframeDays   Timeframe = "days"
	TimeframeWeeks  Timeframe = "weeks"
	TimeframeMonths Timeframe = "months"
)

// Timeframes lists the valid bucketing granularities.
var Timeframes = []Timeframe{TimeframeDays, TimeframeWeeks, TimeframeMonths}

// Bucket is one entry of an evolution series.
type Bucket struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

const weeksPerYear = 52

// monthLabels are the short month names used on the evolution chart.
var monthLabels = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// TotalDuration sums all completed durations plus the elapsed time of the
// active session, if any.
func TotalDuration(
	sessions []models.StudySession,
	active *models.StudySession,
	now time.Time,
) int64 {
	var total int64

	for i := range sessions {
		total += sessions[i].Duration
	}

	if active != nil {
		total += active.Elapsed(now)
	}

	return total
}

// TotalsByDate groups completed sessions by date, summing durations.
// Active-session elapsed time is not included; callers that need a live
// total for a date must add it themselves.
func TotalsByDate(sessions []models.StudySession) map[string]int64 {
	totals := make(map[string]int64)

	for i := range sessions {
		totals[sessions[i].Date] += sessions[i].Duration
	}

	return totals
}

// Intensity maps a day's total milliseconds to its tier. Thresholds are
// strict: exactly 4 hours is TierMedium, not TierHigh.
func Intensity(totalMs int64) Tier {
	hours := timeutil.MsToHours(totalMs)

	switch {
	case hours > 4:
		return TierHigh
	case hours > 2:
		return TierMedium
	case totalMs > 0:
		return TierLow
	default:
		return TierNone
	}
}

// BucketSeries produces the complete, gap-filled evolution series for the
// year at the requested granularity. Sessions dated outside the year are
// excluded. The weekly series has exactly 52 buckets; sessions landing in
// the trailing partial week of the year (day 365 onward) are dropped.
// Hour values are rounded half-up to 2 decimal places.
func BucketSeries(
	sessions []models.StudySession,
	year int,
	timeframe Timeframe,
) []Bucket {
	byDay := make(map[int]int64)   // day of year
	byWeek := make(map[int]int64)  // 1..52
	byMonth := make(map[int]int64) // 1..12

	for i := range sessions {
		sess := sessions[i]

		d, err := timeutil.ParseDate(sess.Date)
		if err != nil || d.Year() != year {
			continue
		}

		byDay[d.YearDay()] += sess.Duration
		byMonth[int(d.Month())] += sess.Duration

		week := (d.YearDay()-1)/7 + 1
		if week <= weeksPerYear {
			byWeek[week] += sess.Duration
		}
	}

	switch timeframe {
	case TimeframeWeeks:
		series := make([]Bucket, 0, weeksPerYear)

		for w := 1; w <= weeksPerYear; w++ {
			series = append(series, Bucket{
				Label: fmt.Sprintf("Semana %d", w),
				Hours: timeutil.Round2(timeutil.MsToHours(byWeek[w])),
			})
		}

		return series
	case TimeframeMonths:
		series := make([]Bucket, 0, len(monthLabels))

		for m, label := range monthLabels {
			series = append(series, Bucket{
				Label: label,
				Hours: timeutil.Round2(timeutil.MsToHours(byMonth[m+1])),
			})
		}

		return series
	default:
		days := timeutil.DaysInYear(year)
		series := make([]Bucket, 0, days)

		d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i := 1; i <= days; i++ {
			series = append(series, Bucket{
				Label: d.Format("02/01"),
				Hours: timeutil.Round2(timeutil.MsToHours(byDay[i])),
			})

			d = d.AddDate(0, 0, 1)
		}

		return series
	}
}
