package setup

import "github.com/charmbracelet/bubbles/key"

type dialogKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var keys = dialogKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("Space", "toggle"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "OK & start"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("Esc", "skip"),
	),
}

func (k dialogKeys) hints() []key.Binding {
	return []key.Binding{k.Down, k.Toggle, k.Confirm, k.Cancel}
}
