// Package setup implements the one-time settings dialog shown on manual launches.
package setup

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
	"github.com/watchfire-io/numlocktray/internal/registrar"
)

// Row labels.
const (
	autostartLabel = "Start with system"
	appMenuLabel   = "Add to application menu"
)

// Dialog collects the registration choices.
type Dialog struct {
	Autostart registrar.Registrar
	AppMenu   registrar.Registrar

	// run and interactive are swapped in tests.
	run         func(Model) (Model, error)
	interactive func() bool
}

// New creates a dialog for the two registrars. appMenu may be unsupported.
func New(autostart, appMenu registrar.Registrar) *Dialog {
	return &Dialog{Autostart: autostart, AppMenu: appMenu, run: runProgram, interactive: hasTerminal}
}

// Fields returns the rows pre-checked from the current registrations.
func (d *Dialog) Fields() []Field {
	var fields []Field
	if supported(d.Autostart) {
		fields = append(fields, Field{Label: autostartLabel, Key: FieldAutostart, Value: d.Autostart.IsEnabled()})
	}
	if supported(d.AppMenu) {
		fields = append(fields, Field{Label: appMenuLabel, Key: FieldAppMenu, Value: d.AppMenu.IsEnabled()})
	}
	return fields
}

// Show blocks until the dialog is dismissed and applies confirmed choices.
// It never prevents the tray from starting: failures are logged.
func (d *Dialog) Show() {
	fields := d.Fields()
	if len(fields) == 0 {
		log.Println("[setup] Nothing to configure on this platform")
		return
	}
	interactive := d.interactive
	if interactive == nil {
		interactive = hasTerminal
	}
	if !interactive() {
		log.Printf("[setup] No terminal attached, skipping setup dialog; run %s to register", commandHint(fields))
		return
	}

	run := d.run
	if run == nil {
		run = runProgram
	}
	final, err := run(NewModel(fields))
	if err != nil {
		log.Printf("[setup] Setup dialog failed: %v", err)
		return
	}
	d.Apply(final)
}

// Apply writes the choices of a confirmed model through the registrars.
func (d *Dialog) Apply(m Model) {
	if !m.Confirmed() {
		log.Println("[setup] Setup dialog closed without changes")
		return
	}
	if v, ok := m.Value(FieldAutostart); ok {
		registrar.Apply("autostart", d.Autostart, v)
	}
	if v, ok := m.Value(FieldAppMenu); ok {
		registrar.Apply("application menu", d.AppMenu, v)
	}
}

// commandHint names the CLI commands that apply the choices of fields.
func commandHint(fields []Field) string {
	var cmds []string
	for _, f := range fields {
		switch f.Key {
		case FieldAutostart:
			cmds = append(cmds, "`"+buildinfo.AppName+" autostart enable`")
		case FieldAppMenu:
			cmds = append(cmds, "`"+buildinfo.AppName+" menu enable`")
		}
	}
	return strings.Join(cmds, " or ")
}

func runProgram(m Model) (Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	result, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected model type %T", final)
	}
	return result, nil
}

func hasTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func supported(r registrar.Registrar) bool {
	return r != nil && r.Supported()
}
