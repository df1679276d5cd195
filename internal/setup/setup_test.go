package setup

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/numlocktray/internal/registrar"
)

func press(m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func twoFields() []Field {
	return []Field{
		{Label: "Start with system", Key: FieldAutostart, Value: false},
		{Label: "Add to application menu", Key: FieldAppMenu, Value: true},
	}
}

func TestModelNavigationAndToggle(t *testing.T) {
	m, _ := press(NewModel(twoFields()), keySpace, keyDown, keySpace, keyDown, keyUp, keyUp)

	if v, _ := m.Value(FieldAutostart); !v {
		t.Error("autostart not toggled on")
	}
	if v, _ := m.Value(FieldAppMenu); v {
		t.Error("app menu not toggled off")
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if _, ok := m.Value("missing"); ok {
		t.Error("Value(missing) reported ok")
	}
}

func TestModelConfirmAndCancel(t *testing.T) {
	tests := []struct {
		name          string
		keys          []tea.KeyMsg
		wantConfirmed bool
	}{
		{name: "enter confirms", keys: []tea.KeyMsg{keyEnter}, wantConfirmed: true},
		{name: "esc cancels", keys: []tea.KeyMsg{keySpace, keyEsc}, wantConfirmed: false},
		{name: "q cancels", keys: []tea.KeyMsg{keyQ}, wantConfirmed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(NewModel(twoFields()), tt.keys...)
			if m.Confirmed() != tt.wantConfirmed {
				t.Errorf("Confirmed() = %v, want %v", m.Confirmed(), tt.wantConfirmed)
			}
			if cmd == nil {
				t.Fatal("no quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
			if m.View() != "" {
				t.Error("View() after close should be empty")
			}
		})
	}
}

func TestModelView(t *testing.T) {
	view := NewModel(twoFields()).View()
	for _, want := range []string{"NumLockTray settings", "Start with system", "Add to application menu", "[ON]", "[OFF]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func desktopRegistrars(t *testing.T) (autostart, menu *registrar.DesktopFile, autostartDir, menuDir string) {
	t.Helper()
	root := t.TempDir()
	autostartDir = filepath.Join(root, "config", "autostart")
	menuDir = filepath.Join(root, "share", "applications")
	opts := registrar.Options{Executable: "/usr/bin/numlocktray"}
	autostart = registrar.NewDesktopFile(autostartDir, "numlocktray.desktop", registrar.AutostartEntry(opts))
	menu = registrar.NewDesktopFile(menuDir, "numlocktray.desktop", registrar.MenuEntry(opts))
	return autostart, menu, autostartDir, menuDir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

func TestConfirmAutostartOnlyCreatesOneRegistration(t *testing.T) {
	autostart, menu, autostartDir, menuDir := desktopRegistrars(t)
	d := New(autostart, menu)

	fields := d.Fields()
	if len(fields) != 2 || fields[0].Value || fields[1].Value {
		t.Fatalf("Fields() = %+v, want two unchecked rows", fields)
	}

	m, _ := press(NewModel(fields), keySpace, keyEnter)
	d.Apply(m)

	if got := countFiles(t, autostartDir); got != 1 {
		t.Errorf("autostart files = %d, want 1", got)
	}
	if got := countFiles(t, menuDir); got != 0 {
		t.Errorf("app menu files = %d, want 0", got)
	}
	if !autostart.IsEnabled() || menu.IsEnabled() {
		t.Error("registrations do not match the confirmed choices")
	}
}

func TestCancelledDialogAppliesNothing(t *testing.T) {
	autostart, menu, autostartDir, menuDir := desktopRegistrars(t)
	d := New(autostart, menu)

	m, _ := press(NewModel(d.Fields()), keySpace, keyDown, keySpace, keyEsc)
	d.Apply(m)

	if countFiles(t, autostartDir)+countFiles(t, menuDir) != 0 {
		t.Error("cancelled dialog created registrations")
	}
}

func TestConfirmDisablesExistingRegistration(t *testing.T) {
	autostart, menu, _, _ := desktopRegistrars(t)
	if err := autostart.SetEnabled(true); err != nil {
		t.Fatal(err)
	}
	d := New(autostart, menu)

	fields := d.Fields()
	if !fields[0].Value {
		t.Fatal("autostart row not pre-checked from existing registration")
	}
	m, _ := press(NewModel(fields), keySpace, keyEnter)
	d.Apply(m)

	if autostart.IsEnabled() {
		t.Error("autostart still enabled after unchecking")
	}
}

func TestShow(t *testing.T) {
	autostart, menu, autostartDir, _ := desktopRegistrars(t)

	var shown []Field
	d := New(autostart, menu)
	d.interactive = func() bool { return true }
	d.run = func(m Model) (Model, error) {
		shown = m.fields
		m, _ = press(m, keySpace, keyEnter)
		return m, nil
	}
	d.Show()

	if len(shown) != 2 {
		t.Errorf("dialog showed %d rows, want 2", len(shown))
	}
	if countFiles(t, autostartDir) != 1 {
		t.Error("Show() did not apply the confirmed autostart choice")
	}
}

func TestShowSkipsWithoutTerminalOrOnError(t *testing.T) {
	autostart, menu, autostartDir, _ := desktopRegistrars(t)

	d := New(autostart, menu)
	d.interactive = func() bool { return false }
	d.run = func(Model) (Model, error) {
		t.Fatal("dialog ran without a terminal")
		return Model{}, nil
	}
	d.Show()

	d.interactive = func() bool { return true }
	d.run = func(m Model) (Model, error) { return m, errors.New("tty closed") }
	d.Show()

	if countFiles(t, autostartDir) != 0 {
		t.Error("registrations created without a confirmed dialog")
	}
}

func TestShowWithoutTerminalLogsCommands(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	autostart, menu, _, _ := desktopRegistrars(t)
	d := New(autostart, menu)
	d.interactive = func() bool { return false }
	d.Show()

	out := buf.String()
	for _, want := range []string{"numlocktray autostart enable", "numlocktray menu enable"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not mention %q", out, want)
		}
	}
}

func TestCommandHint(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{name: "autostart only", fields: []Field{{Key: FieldAutostart}}, want: "`numlocktray autostart enable`"},
		{name: "both", fields: twoFields(), want: "`numlocktray autostart enable` or `numlocktray menu enable`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandHint(tt.fields); got != tt.want {
				t.Errorf("commandHint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldsSkipUnsupported(t *testing.T) {
	autostart, _, _, _ := desktopRegistrars(t)
	d := New(autostart, registrar.Unsupported{})

	fields := d.Fields()
	if len(fields) != 1 || fields[0].Key != FieldAutostart {
		t.Errorf("Fields() = %+v, want only autostart", fields)
	}

	d = New(registrar.Unsupported{}, nil)
	d.interactive = func() bool {
		t.Fatal("terminal checked with nothing to configure")
		return false
	}
	d.Show()
}
