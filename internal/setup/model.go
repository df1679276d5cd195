package setup

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
)

// Field keys.
const (
	FieldAutostart = "autostart"
	FieldAppMenu   = "app_menu"
)

// Field is one toggle row of the dialog.
type Field struct {
	Label string
	Key   string
	Value bool
}

// Model is the bubbletea model of the setup dialog.
type Model struct {
	fields    []Field
	cursor    int
	confirmed bool
	done      bool
}

// NewModel creates the dialog with the given rows.
func NewModel(fields []Field) Model {
	return Model{fields: fields}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Confirm):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Toggle):
		if m.cursor >= 0 && m.cursor < len(m.fields) {
			m.fields[m.cursor].Value = !m.fields[m.cursor].Value
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	lines := []string{titleStyle.Render(buildinfo.DisplayName + " settings")}
	for i, f := range m.fields {
		val := toggleOffStyle.Render("[OFF]")
		if f.Value {
			val = toggleOnStyle.Render("[ON]")
		}
		line := labelStyle.Render(f.Label) + " " + val
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}

	var hints []string
	for _, b := range keys.hints() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	lines = append(lines, hintStyle.Render(strings.Join(hints, " · ")))

	return dialogStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// Confirmed reports whether the user accepted the dialog.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Value returns the toggle value for key and whether the row exists.
func (m Model) Value(fieldKey string) (value, ok bool) {
	for _, f := range m.fields {
		if f.Key == fieldKey {
			return f.Value, true
		}
	}
	return false, false
}
