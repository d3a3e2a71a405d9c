// Package timer renders the live elapsed-time view for the active study
// session and handles stopping it from the keyboard.
package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/chronos/internal/config"
	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
	"github.com/ayoisaiah/chronos/store"
)

// Timer is the bubbletea model for the live session view. Each tick only
// recomputes the derived elapsed value; the session record itself is not
// touched until the user stops it.
type Timer struct {
	store   *store.SessionStore
	opts    *config.Config
	session models.StudySession
	clock   stopwatch.Model
	help    help.Model
	style   styles
	elapsed int64
	done    *models.StudySession
	err     error
}

type styles struct {
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
}

// New returns a timer attached to the currently active session. It fails
// with store.ErrNoActiveSession when nothing is running.
func New(s *store.SessionStore, cfg *config.Config) (*Timer, error) {
	sess, ok := s.ActiveSession()
	if !ok {
		return nil, store.ErrNoActiveSession
	}

	t := &Timer{
		store:   s,
		opts:    cfg,
		session: sess,
		clock:   stopwatch.NewWithInterval(time.Second),
		help:    help.New(),
		elapsed: sess.Elapsed(time.Now()),
		style: styles{
			main: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#0055FF")),
			secondary: lipgloss.NewStyle().
				Foreground(lipgloss.Color("246")),
			hint: lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")),
		},
	}

	return t, nil
}

// SessionCompleted sends the completion notification and runs the
// configured post-session command. Failures of either are logged, not
// surfaced: the session itself is already stopped and persisted.
func SessionCompleted(cfg *config.Config, sess *models.StudySession) {
	notify(cfg, sess)

	if err := runSessionCmd(cfg); err != nil {
		slog.Warn("session cmd failed", slog.Any("error", err))
	}
}

// notify sends a desktop notification for a finished session.
func notify(cfg *config.Config, sess *models.StudySession) {
	if !cfg.Notification.Enabled {
		return
	}

	msg := fmt.Sprintf(
		"You studied %s for %s",
		sess.Subject,
		timeutil.FormatDurationShort(sess.Duration),
	)

	// an undelivered notification is not worth surfacing
	_ = beeep.Notify("Session completed", msg, "")
}

// runSessionCmd executes the user's post-session command, if configured.
func runSessionCmd(cfg *config.Config) error {
	sessionCmd := cfg.Session.Cmd
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
