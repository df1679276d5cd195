//go:build linux

package lockstate

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	kdgkbled = 0x4B64 // KDGKBLED: get keyboard flags CapsLock, NumLock, ScrollLock
	kNumLock = 0x02
)

// ConsoleStrategy reads the keyboard flags of a virtual console with the KDGKBLED ioctl.
// The flags only track the LED while the console owns the keyboard: an X or
// Wayland session grabs the input device, so the strategy is skipped there.
type ConsoleStrategy struct {
	Devices []string
}

// Name implements Strategy.
func (c ConsoleStrategy) Name() string { return "console-ioctl" }

// Query implements Strategy.
func (c ConsoleStrategy) Query() (bool, error) {
	if graphicalSession() {
		return false, fmt.Errorf("console ioctl: graphical session: %w", ErrUnavailable)
	}

	devices := c.Devices
	if len(devices) == 0 {
		devices = []string{"/dev/console", "/dev/tty0"}
	}

	var lastErr error = ErrUnavailable
	for _, dev := range devices {
		fd, err := unix.Open(dev, unix.O_RDONLY|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
		if err != nil {
			lastErr = err
			continue
		}
		flags, err := unix.IoctlGetInt(fd, kdgkbled)
		unix.Close(fd)
		if err != nil {
			lastErr = err
			continue
		}
		return flags&kNumLock != 0, nil
	}
	return false, fmt.Errorf("console ioctl: %w", lastErr)
}

func graphicalSession() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func platformChain() Chain {
	return Chain{
		ConsoleStrategy{},
		XsetStrategy{},
		LEDStrategy{Root: DefaultLEDRoot},
	}
}
