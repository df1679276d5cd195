//go:build !linux && !windows

package registrar

// NewAutostart returns the autostart registrar for this platform.
func NewAutostart(Options) Registrar { return Unsupported{} }

// NewAppMenu returns the application menu registrar for this platform.
func NewAppMenu(Options) Registrar { return Unsupported{} }
