package lockstate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLEDRoot is the sysfs LED class directory.
const DefaultLEDRoot = "/sys/class/leds"

// LEDStrategy reads the brightness of a numlock LED under the sysfs LED class.
type LEDStrategy struct {
	Root string
}

// Name implements Strategy.
func (l LEDStrategy) Name() string { return "sysfs-led" }

// Query implements Strategy. The first readable LED whose name contains
// "numlock" decides; any content other than "0" counts as on.
func (l LEDStrategy) Query() (bool, error) {
	root := l.Root
	if root == "" {
		root = DefaultLEDRoot
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", root, err)
	}

	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Name()), "numlock") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, e.Name(), "brightness"))
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(data)) != "0", nil
	}
	return false, fmt.Errorf("no readable numlock LED under %s: %w", root, ErrUnavailable)
}
