//go:build windows

package registrar

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
)

// RunKeyPath is the per-user "run on login" key.
const RunKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// runKey is the subset of registry.Key used here.
type runKey interface {
	GetValue(name string, buf []byte) (int, uint32, error)
	SetStringValue(name, value string) error
	DeleteValue(name string) error
	Close() error
}

// RunKey registers a command line under HKCU\...\Run.
type RunKey struct {
	valueName string
	command   string
	open      func(write bool) (runKey, error)
}

// NewAutostart returns the registry autostart registrar.
func NewAutostart(opts Options) Registrar {
	return &RunKey{
		valueName: buildinfo.DisplayName,
		command:   CommandLine(opts.Executable, AutostartFlag),
		open:      openRunKey,
	}
}

// NewAppMenu returns the application menu registrar; Windows has none.
func NewAppMenu(Options) Registrar { return Unsupported{} }

// CommandLine quotes exe and appends args for the Run value.
func CommandLine(exe string, args ...string) string {
	cmd := `"` + exe + `"`
	for _, a := range args {
		cmd += " " + a
	}
	return cmd
}

func openRunKey(write bool) (runKey, error) {
	if write {
		k, _, err := registry.CreateKey(registry.CURRENT_USER, RunKeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
		return k, err
	}
	return registry.OpenKey(registry.CURRENT_USER, RunKeyPath, registry.QUERY_VALUE)
}

// Supported implements Registrar.
func (r *RunKey) Supported() bool { return true }

// IsEnabled implements Registrar. Presence of the value is the enabled signal.
func (r *RunKey) IsEnabled() bool {
	k, err := r.open(false)
	if err != nil {
		return false
	}
	defer k.Close()

	_, _, err = k.GetValue(r.valueName, nil)
	return err == nil
}

// SetEnabled implements Registrar.
func (r *RunKey) SetEnabled(enable bool) error {
	k, err := r.open(true)
	if err != nil {
		return fmt.Errorf("failed to open run key: %w", err)
	}
	defer k.Close()

	if enable {
		if err := k.SetStringValue(r.valueName, r.command); err != nil {
			return fmt.Errorf("failed to set %s: %w", r.valueName, err)
		}
		return nil
	}

	if err := k.DeleteValue(r.valueName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", r.valueName, err)
	}
	return nil
}
