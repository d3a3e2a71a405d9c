// Package models defines the records chronos persists.
package models

import (
	"strconv"
	"time"
)

// DefaultSubject labels sessions that were started without a subject.
const DefaultSubject = "Estudo Geral"

// DateFormat is the layout of the calendar date a session is attributed to.
const DateFormat = "2006-01-02"

// StudySession is a single timed study period attributed to a calendar
// date. The date is chosen by the user when the session starts and is not
// necessarily the current day. Field names and epoch-millisecond
// timestamps match the JSON format written under the chronos storage keys,
// which other chronos frontends read as well.
type StudySession struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime int64  `json:"startTime"`
	EndTime   *int64 `json:"endTime"`
	Duration  int64  `json:"duration"`
	Subject   string `json:"subject,omitempty"`
}

// NewSession creates an active session attributed to the given date.
func NewSession(date, subject string, now time.Time) *StudySession {
	ms := now.UnixMilli()

	if subject == "" {
		subject = DefaultSubject
	}

	return &StudySession{
		ID:        strconv.FormatInt(ms, 10),
		Date:      date,
		StartTime: ms,
		Subject:   subject,
	}
}

// Active reports whether the session is still running.
func (s *StudySession) Active() bool {
	return s.EndTime == nil
}

// Elapsed returns the milliseconds accumulated by the session so far.
// For a completed session this is its fixed duration.
func (s *StudySession) Elapsed(now time.Time) int64 {
	if !s.Active() {
		return s.Duration
	}

	ms := now.UnixMilli() - s.StartTime
	if ms < 0 {
		return 0
	}

	return ms
}

// Finalize ends the session at the given time and fixes its duration.
func (s *StudySession) Finalize(now time.Time) {
	end := now.UnixMilli()

	s.EndTime = &end
	s.Duration = end - s.StartTime
}
