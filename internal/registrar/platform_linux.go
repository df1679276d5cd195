//go:build linux

package registrar

import (
	"log"

	"github.com/watchfire-io/numlocktray/internal/config"
)

// NewAutostart returns the XDG autostart registrar (~/.config/autostart/numlocktray.desktop).
func NewAutostart(opts Options) Registrar {
	dir, err := config.AutostartDir()
	if err != nil {
		log.Printf("Autostart unavailable: %v", err)
		return Unsupported{}
	}
	return NewDesktopFile(dir, config.DesktopFileName, AutostartEntry(opts))
}

// NewAppMenu returns the application menu registrar (~/.local/share/applications/numlocktray.desktop).
func NewAppMenu(opts Options) Registrar {
	dir, err := config.ApplicationsDir()
	if err != nil {
		log.Printf("Application menu unavailable: %v", err)
		return Unsupported{}
	}
	return NewDesktopFile(dir, config.DesktopFileName, MenuEntry(opts))
}
