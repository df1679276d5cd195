// Package registrar registers the application for automatic start at login
// and, where the desktop supports it, in the application menu.
package registrar

import "log"

// AutostartFlag marks a launch triggered by the OS autostart mechanism.
const AutostartFlag = "--autostart"

// Registrar persists one OS registration: autostart or an application menu entry.
type Registrar interface {
	// Supported reports whether the registration exists on this platform.
	Supported() bool

	// IsEnabled reads the registration. It is never cached.
	IsEnabled() bool

	// SetEnabled creates or removes the registration. Removing an absent
	// registration is not an error.
	SetEnabled(enable bool) error
}

// Located is implemented by registrars backed by a file.
type Located interface {
	Path() string
}

// Options describe the program being registered.
type Options struct {
	// Executable is the absolute path of the binary to relaunch.
	Executable string

	// IconPath is an optional icon referenced from desktop entries.
	IconPath string
}

// Apply sets r to enable and logs failures. It reports whether the
// registration changed.
func Apply(name string, r Registrar, enable bool) bool {
	if r == nil || !r.Supported() {
		return false
	}
	if r.IsEnabled() == enable {
		return false
	}
	if err := r.SetEnabled(enable); err != nil {
		log.Printf("Failed to update %s registration: %v", name, err)
		return false
	}
	log.Printf("%s registration set to %v", name, enable)
	return true
}

// Unsupported is the registrar for platforms without the registration.
type Unsupported struct{}

// Supported implements Registrar.
func (Unsupported) Supported() bool { return false }

// IsEnabled implements Registrar.
func (Unsupported) IsEnabled() bool { return false }

// SetEnabled implements Registrar. It does nothing.
func (Unsupported) SetEnabled(bool) error { return nil }
