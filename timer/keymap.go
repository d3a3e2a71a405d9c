package timer

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	stop   key.Binding
	detach key.Binding
}

var defaultKeymap = keymap{
	stop: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "stop session"),
	),
	detach: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "detach (keep running)"),
	),
}
