// Package notify sends desktop notifications when the Num Lock state changes.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
)

// Notifier announces a state change.
type Notifier interface {
	Notify(on bool)
}

// Desktop sends notifications through the platform notification service.
type Desktop struct {
	IconPath string

	// send is swapped in tests.
	send func(title, message, icon string) error
}

// NewDesktop creates a desktop notifier.
func NewDesktop(iconPath string) *Desktop {
	return &Desktop{IconPath: iconPath, send: beeepNotify}
}

func beeepNotify(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// Notify implements Notifier. Failures are logged.
func (d *Desktop) Notify(on bool) {
	send := d.send
	if send == nil {
		send = beeepNotify
	}
	if err := send(buildinfo.DisplayName, Message(on), d.IconPath); err != nil {
		log.Printf("[notify] Failed to send notification: %v", err)
	}
}

// Message is the notification body for a state.
func Message(on bool) string {
	if on {
		return "Num Lock is ON"
	}
	return "Num Lock is OFF"
}

// Nop discards notifications.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(bool) {}
