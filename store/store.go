// Package store owns the study session collection and the single active
// session, and keeps both in sync with the persistence medium.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
)

var (
	// ErrSessionActive signals a start attempt while a session is
	// already running.
	ErrSessionActive = errors.New(
		"a study session is already in progress: stop it first",
	)

	// ErrNoActiveSession signals a stop attempt with nothing running.
	ErrNoActiveSession = errors.New("no study session is in progress")
)

// SessionStore owns the completed session collection and the at-most-one
// active session. All mutation goes through Start, Stop, and Delete; the
// rest of the program only sees snapshots. Writes made by other instances
// sharing the same medium are reconciled through watch events as
// whole-value replacements.
type SessionStore struct {
	medium  Medium
	token   Token
	unwatch func()
	now     func() time.Time
	logger  *slog.Logger

	mu       sync.Mutex
	sessions []*models.StudySession
	active   *models.StudySession
	subs     map[int]func()
	nextSub  int
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		s.now = now
	}
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *SessionStore) {
		s.logger = l
	}
}

// NewSessionStore rehydrates a store from the medium and begins watching
// it for changes made by other instances.
func NewSessionStore(medium Medium, opts ...Option) (*SessionStore, error) {
	s := &SessionStore{
		medium: medium,
		now:    time.Now,
		logger: slog.Default(),
		subs:   make(map[int]func()),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	s.token, s.unwatch = medium.Watch(s.applyChange)

	return s, nil
}

// Start creates the active session attributed to the given date. It fails
// with ErrSessionActive when a session is already running, leaving all
// state unchanged. A blank subject gets the default label.
func (s *SessionStore) Start(date, subject string) error {
	if date == "" {
		date = timeutil.Today()
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return err
	}

	s.mu.Lock()

	if s.active != nil {
		s.mu.Unlock()
		return ErrSessionActive
	}

	s.active = models.NewSession(date, subject, s.now())

	err := s.saveActive()

	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.notify()

	return nil
}

// Stop finalizes the active session, appends it to the completed
// collection, and clears the active slot. It fails with
// ErrNoActiveSession when nothing is running.
func (s *SessionStore) Stop() (*models.StudySession, error) {
	s.mu.Lock()

	if s.active == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}

	sess := s.active
	sess.Finalize(s.now())

	s.sessions = append(s.sessions, sess)
	s.active = nil

	err := s.saveSessions()
	if err == nil {
		err = s.medium.Delete(KeyActiveSession, s.token)
	}

	done := *sess

	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.notify()

	return &done, nil
}

// Delete removes the completed session with the given id. Deleting an
// unknown id is a silent no-op, and the active session is never affected.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()

	removed := false

	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			removed = true

			break
		}
	}

	if !removed {
		s.mu.Unlock()
		return nil
	}

	err := s.saveSessions()

	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.notify()

	return nil
}

// Sessions returns a snapshot of the completed collection in insertion
// order (oldest first).
func (s *SessionStore) Sessions() []models.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.StudySession, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = *sess
	}

	return out
}

// ActiveSession returns a snapshot of the active session, or false when
// nothing is running.
func (s *SessionStore) ActiveSession() (models.StudySession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.StudySession{}, false
	}

	return *s.active, true
}

// Subscribe registers fn to run after every state change, whether caused
// locally or reconciled from the medium. The returned function cancels
// the subscription.
func (s *SessionStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subs, id)
	}
}

// Close stops watching the medium. The medium itself is owned by the
// caller and stays open.
func (s *SessionStore) Close() {
	if s.unwatch != nil {
		s.unwatch()
	}
}

// load rehydrates both keys. A missing sessions key seeds the first-run
// example sessions; a present-but-empty one does not. Malformed data
// degrades to the empty state with a log entry, never an error.
func (s *SessionStore) load() error {
	raw, err := s.medium.Get(KeySessions)
	if err != nil {
		return err
	}

	if raw == nil {
		s.sessions = seedSessions()

		if err := s.saveSessions(); err != nil {
			return err
		}
	} else if err := json.Unmarshal(raw, &s.sessions); err != nil {
		s.logger.Warn("discarding malformed session data",
			slog.String("key", KeySessions),
			slog.Any("error", err),
		)

		s.sessions = nil
	}

	for _, sess := range s.sessions {
		if sess.Subject == "" {
			sess.Subject = models.DefaultSubject
		}
	}

	raw, err = s.medium.Get(KeyActiveSession)
	if err != nil {
		return err
	}

	if raw != nil {
		var active models.StudySession

		if err := json.Unmarshal(raw, &active); err != nil {
			s.logger.Warn("discarding malformed active session",
				slog.String("key", KeyActiveSession),
				slog.Any("error", err),
			)
		} else {
			if active.Subject == "" {
				active.Subject = models.DefaultSubject
			}

			s.active = &active
		}
	}

	return nil
}

// applyChange reconciles a write made by another instance. The incoming
// value replaces the corresponding state wholesale; there is no
// field-level merging.
func (s *SessionStore) applyChange(ch Change) {
	s.mu.Lock()

	switch ch.Key {
	case KeySessions:
		var sessions []*models.StudySession

		if ch.Value != nil {
			if err := json.Unmarshal(ch.Value, &sessions); err != nil {
				s.logger.Warn("discarding malformed session data",
					slog.String("key", KeySessions),
					slog.Any("error", err),
				)

				sessions = nil
			}
		}

		for _, sess := range sessions {
			if sess.Subject == "" {
				sess.Subject = models.DefaultSubject
			}
		}

		s.sessions = sessions
	case KeyActiveSession:
		s.active = nil

		if ch.Value != nil {
			var active models.StudySession

			if err := json.Unmarshal(ch.Value, &active); err != nil {
				s.logger.Warn("discarding malformed active session",
					slog.String("key", KeyActiveSession),
					slog.Any("error", err),
				)
			} else {
				if active.Subject == "" {
					active.Subject = models.DefaultSubject
				}

				s.active = &active
			}
		}
	default:
		s.mu.Unlock()
		return
	}

	s.mu.Unlock()

	s.notify()
}

// saveSessions persists the completed collection. Callers hold s.mu.
func (s *SessionStore) saveSessions() error {
	if s.sessions == nil {
		s.sessions = []*models.StudySession{}
	}

	b, err := json.Marshal(s.sessions)
	if err != nil {
		return err
	}

	return s.medium.Set(KeySessions, b, s.token)
}

// saveActive persists the active session. Callers hold s.mu.
func (s *SessionStore) saveActive() error {
	b, err := json.Marshal(s.active)
	if err != nil {
		return err
	}

	return s.medium.Set(KeyActiveSession, b, s.token)
}

func (s *SessionStore) notify() {
	s.mu.Lock()

	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}

	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// seedSessions returns the example sessions written on a true first run,
// when the sessions key has never existed.
func seedSessions() []*models.StudySession {
	mk := func(id, date, subject string, start time.Time, mins int64) *models.StudySession {
		end := start.UnixMilli() + mins*int64(timeutil.MsPerMinute)

		return &models.StudySession{
			ID:        id,
			Date:      date,
			StartTime: start.UnixMilli(),
			EndTime:   &end,
			Duration:  mins * int64(timeutil.MsPerMinute),
			Subject:   subject,
		}
	}

	return []*models.StudySession{
		mk(
			"mock-1",
			"2026-02-24",
			"Lógica de Programação",
			time.Date(2026, time.February, 24, 10, 0, 0, 0, time.Local),
			90,
		),
		mk(
			"mock-2",
			"2026-02-25",
			"React & TypeScript",
			time.Date(2026, time.February, 25, 14, 0, 0, 0, time.Local),
			74,
		),
	}
}
