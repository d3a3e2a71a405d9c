package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

func (t *Timer) Init() tea.Cmd {
	return t.clock.Init()
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopwatch.TickMsg:
		var cmd tea.Cmd
		t.clock, cmd = t.clock.Update(msg)

		// The session may have been stopped or replaced by another
		// instance; the store snapshot is authoritative.
		sess, ok := t.store.ActiveSession()
		if !ok {
			return t, tea.Quit
		}

		t.session = sess
		t.elapsed = sess.Elapsed(time.Now())

		return t, cmd
	case stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		t.clock, cmd = t.clock.Update(msg)

		return t, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.stop):
			return t, t.stopSession()
		case key.Matches(msg, defaultKeymap.detach):
			return t, tea.Quit
		}
	}

	return t, nil
}

// stopSession finalizes the active session and quits the view.
func (t *Timer) stopSession() tea.Cmd {
	sess, err := t.store.Stop()
	if err != nil {
		t.err = err
		return tea.Quit
	}

	t.done = sess

	SessionCompleted(t.opts, sess)

	return tea.Quit
}

// Err reports a failure that ended the view, if any.
func (t *Timer) Err() error {
	return t.err
}
