package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/chronos/internal/timeutil"
)

func (t *Timer) View() string {
	if t.err != nil {
		return ""
	}

	if t.done != nil {
		return t.doneView()
	}

	return t.timerView()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.style.secondary.Render(
		fmt.Sprintf("SESSÃO ATIVA • %s", t.session.Date),
	))
	s.WriteString("\n\n")
	s.WriteString(t.style.main.Render(timeutil.FormatDuration(t.elapsed)))
	s.WriteString("\n\n")
	s.WriteString(t.style.hint.Render(t.session.Subject))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.stop,
		defaultKeymap.detach,
	}))
	s.WriteString("\n")

	return s.String()
}

func (t *Timer) doneView() string {
	var s strings.Builder

	s.WriteString(t.style.main.Render("Session completed"))
	s.WriteString("\n\n")
	s.WriteString(t.style.secondary.Render(
		fmt.Sprintf(
			"%s • %s • %s",
			t.done.Date,
			t.done.Subject,
			timeutil.FormatDurationShort(t.done.Duration),
		),
	))
	s.WriteString("\n")

	return s.String()
}
