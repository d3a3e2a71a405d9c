package models_test

import (
	"testing"
	"time"

	"github.com/ayoisaiah/chronos/internal/models"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	sess := models.NewSession("2026-03-01", "", now)

	if !sess.Active() {
		t.Error("Expected a new session to be active")
	}

	if sess.Duration != 0 {
		t.Errorf("Expected zero duration, but got: %d", sess.Duration)
	}

	if sess.Subject != models.DefaultSubject {
		t.Errorf(
			"Expected the default subject, but got: %q",
			sess.Subject,
		)
	}

	if sess.StartTime != now.UnixMilli() {
		t.Errorf(
			"Expected start time %d, but got: %d",
			now.UnixMilli(),
			sess.StartTime,
		)
	}
}

func TestElapsedAndFinalize(t *testing.T) {
	start := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	sess := models.NewSession("2026-03-01", "Math", start)

	if got := sess.Elapsed(start.Add(10 * time.Minute)); got != 600000 {
		t.Errorf("Expected 600000ms elapsed, but got: %d", got)
	}

	// a clock that went backwards must not yield a negative value
	if got := sess.Elapsed(start.Add(-time.Minute)); got != 0 {
		t.Errorf("Expected 0ms elapsed, but got: %d", got)
	}

	end := start.Add(90 * time.Minute)
	sess.Finalize(end)

	if sess.Active() {
		t.Error("Expected a finalized session to be inactive")
	}

	if sess.Duration != 5400000 {
		t.Errorf("Expected duration 5400000, but got: %d", sess.Duration)
	}

	if *sess.EndTime-sess.StartTime != sess.Duration {
		t.Error("Expected duration to equal endTime-startTime")
	}

	// Elapsed is fixed after finalization
	if got := sess.Elapsed(end.Add(time.Hour)); got != sess.Duration {
		t.Errorf("Expected %d, but got: %d", sess.Duration, got)
	}
}
