package stats_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
	"github.com/ayoisaiah/chronos/stats"
)

func completed(date string, mins int64) models.StudySession {
	start := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC).UnixMilli()
	end := start + mins*timeutil.MsPerMinute

	return models.StudySession{
		ID:        date + "-" + time.UnixMilli(start).String(),
		Date:      date,
		StartTime: start,
		EndTime:   &end,
		Duration:  mins * timeutil.MsPerMinute,
		Subject:   models.DefaultSubject,
	}
}

func TestTotalDuration(t *testing.T) {
	sessions := []models.StudySession{
		completed("2026-03-01", 60),
		completed("2026-03-02", 30),
	}

	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	got := stats.TotalDuration(sessions, nil, now)
	want := int64(90 * timeutil.MsPerMinute)

	if got != want {
		t.Errorf("Expected total to be %d, but got: %d", want, got)
	}

	// repeated calls with the same inputs must agree
	if again := stats.TotalDuration(sessions, nil, now); again != got {
		t.Errorf("Expected %d on a repeated call, but got: %d", got, again)
	}

	active := &models.StudySession{
		ID:        "active",
		Date:      "2026-03-02",
		StartTime: now.Add(-15 * time.Minute).UnixMilli(),
	}

	got = stats.TotalDuration(sessions, active, now)
	want += 15 * timeutil.MsPerMinute

	if got != want {
		t.Errorf("Expected total with active to be %d, but got: %d", want, got)
	}
}

func TestTotalsByDate(t *testing.T) {
	sessions := []models.StudySession{
		completed("2026-03-01", 60),
		completed("2026-03-01", 180),
		completed("2026-03-02", 30),
	}

	totals := stats.TotalsByDate(sessions)

	want := map[string]int64{
		"2026-03-01": 240 * timeutil.MsPerMinute,
		"2026-03-02": 30 * timeutil.MsPerMinute,
	}

	if diff := cmp.Diff(want, totals); diff != "" {
		t.Errorf("Totals by date mismatch:\n%s", diff)
	}
}

func TestIntensity(t *testing.T) {
	cases := []struct {
		name    string
		totalMs int64
		want    stats.Tier
	}{
		{"zero", 0, stats.TierNone},
		{"one minute", timeutil.MsPerMinute, stats.TierLow},
		{"exactly 2h", 2 * timeutil.MsPerHour, stats.TierLow},
		{"just over 2h", 2*timeutil.MsPerHour + 1, stats.TierMedium},
		{"exactly 4h", 4 * timeutil.MsPerHour, stats.TierMedium},
		{"just over 4h", 4*timeutil.MsPerHour + 1, stats.TierHigh},
		{"eight hours", 8 * timeutil.MsPerHour, stats.TierHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stats.Intensity(tc.totalMs); got != tc.want {
				t.Errorf(
					"Expected tier %v for %dms, but got: %v",
					tc.want,
					tc.totalMs,
					got,
				)
			}
		})
	}
}

// Two sessions of 1h and 3h on one date total exactly 4h, which stays
// TierMedium under the strict comparator.
func TestIntensityFourHourBoundary(t *testing.T) {
	sessions := []models.StudySession{
		completed("2026-03-01", 60),
		completed("2026-03-01", 180),
	}

	total := stats.TotalsByDate(sessions)["2026-03-01"]

	if total != 14400000 {
		t.Fatalf("Expected total to be 14400000, but got: %d", total)
	}

	if got := stats.Intensity(total); got != stats.TierMedium {
		t.Errorf("Expected TierMedium for exactly 4h, but got: %v", got)
	}
}

func TestBucketSeriesDays(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2024, 366},
		{2026, 365},
		{2028, 366},
	}

	for _, tc := range cases {
		series := stats.BucketSeries(nil, tc.year, stats.TimeframeDays)

		if len(series) != tc.want {
			t.Errorf(
				"Expected %d day buckets for %d, but got: %d",
				tc.want,
				tc.year,
				len(series),
			)
		}
	}

	sessions := []models.StudySession{
		completed("2026-01-01", 90),
		completed("2026-03-01", 60),
		completed("2026-03-01", 30),
		completed("2026-12-31", 45),
		completed("2025-06-15", 600), // outside the year
	}

	series := stats.BucketSeries(sessions, 2026, stats.TimeframeDays)

	if got := series[0]; got.Label != "01/01" || got.Hours != 1.5 {
		t.Errorf("Unexpected first bucket: %+v", got)
	}

	if got := series[len(series)-1]; got.Label != "31/12" || got.Hours != 0.75 {
		t.Errorf("Unexpected last bucket: %+v", got)
	}

	// day buckets must agree with the per-date totals
	totals := stats.TotalsByDate(sessions)

	var sum float64
	for _, b := range series {
		sum += b.Hours
	}

	var want float64
	for date, ms := range totals {
		if date[:4] == "2026" {
			want += timeutil.Round2(timeutil.MsToHours(ms))
		}
	}

	if diff := want - sum; diff > 0.001 || diff < -0.001 {
		t.Errorf("Expected day buckets to sum to %v, but got: %v", want, sum)
	}
}

func TestBucketSeriesWeeks(t *testing.T) {
	sessions := []models.StudySession{
		completed("2026-01-01", 60),  // week 1
		completed("2026-01-07", 60),  // still week 1
		completed("2026-01-08", 120), // week 2
		completed("2026-12-30", 90),  // day 364, week 52
		completed("2026-12-31", 90),  // day 365, week 53: dropped
	}

	series := stats.BucketSeries(sessions, 2026, stats.TimeframeWeeks)

	if len(series) != 52 {
		t.Fatalf("Expected 52 week buckets, but got: %d", len(series))
	}

	if got := series[0]; got.Label != "Semana 1" || got.Hours != 2 {
		t.Errorf("Unexpected week 1 bucket: %+v", got)
	}

	if got := series[1]; got.Hours != 2 {
		t.Errorf("Expected 2 hours in week 2, but got: %v", got.Hours)
	}

	if got := series[51]; got.Label != "Semana 52" || got.Hours != 1.5 {
		t.Errorf("Unexpected week 52 bucket: %+v", got)
	}

	var sum float64
	for _, b := range series {
		sum += b.Hours
	}

	// the December 31 session fell past week 52
	if sum != 5.5 {
		t.Errorf("Expected 5.5 total hours across weeks, but got: %v", sum)
	}
}

func TestBucketSeriesMonths(t *testing.T) {
	series := stats.BucketSeries(nil, 2026, stats.TimeframeMonths)

	if len(series) != 12 {
		t.Fatalf("Expected 12 month buckets, but got: %d", len(series))
	}

	sessions := []models.StudySession{
		completed("2026-02-24", 90),
		completed("2026-02-25", 74),
		completed("2026-11-05", 30),
		completed("2027-02-01", 600), // outside the year
	}

	series = stats.BucketSeries(sessions, 2026, stats.TimeframeMonths)

	labels := make([]string, len(series))
	for i, b := range series {
		labels[i] = b.Label
	}

	wantLabels := []string{
		"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
		"Jul", "Ago", "Set", "Out", "Nov", "Dez",
	}

	if diff := cmp.Diff(wantLabels, labels); diff != "" {
		t.Errorf("Month labels mismatch:\n%s", diff)
	}

	// 164 minutes rounds half-up to 2.73 hours
	if got := series[1].Hours; got != 2.73 {
		t.Errorf("Expected 2.73 hours in February, but got: %v", got)
	}

	if got := series[10].Hours; got != 0.5 {
		t.Errorf("Expected 0.5 hours in November, but got: %v", got)
	}

	for _, i := range []int{0, 2, 11} {
		if series[i].Hours != 0 {
			t.Errorf("Expected %s to be empty, but got: %v", series[i].Label, series[i].Hours)
		}
	}
}

func TestBucketSeriesIgnoresMalformedDates(t *testing.T) {
	sessions := []models.StudySession{
		{ID: "1", Date: "not-a-date", Duration: 60 * timeutil.MsPerMinute},
		completed("2026-05-01", 60),
	}

	for _, tf := range stats.Timeframes {
		series := stats.BucketSeries(sessions, 2026, tf)

		var sum float64
		for _, b := range series {
			sum += b.Hours
		}

		if sum != 1 {
			t.Errorf(
				"Expected 1 hour total for %s, but got: %v",
				tf,
				sum,
			)
		}
	}
}
