package lockstate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const numLockMarker = "Num Lock:"

// XsetStrategy asks the X server through `xset q`.
type XsetStrategy struct {
	// Command defaults to "xset".
	Command string
}

// Name implements Strategy.
func (x XsetStrategy) Name() string { return "xset" }

// Query implements Strategy.
func (x XsetStrategy) Query() (bool, error) {
	if os.Getenv("DISPLAY") == "" {
		return false, fmt.Errorf("xset: DISPLAY not set: %w", ErrUnavailable)
	}
	command := x.Command
	if command == "" {
		command = "xset"
	}
	out, err := exec.Command(command, "q").Output()
	if err != nil {
		return false, fmt.Errorf("xset q: %w", err)
	}
	return ParseXset(string(out))
}

var errNoNumLock = errors.New("xset output has no Num Lock indicator")

// ParseXset extracts the Num Lock state from `xset q` output. Runs of spaces
// are collapsed first, so "Num Lock:  on" and "Num Lock: on" are equivalent.
func ParseXset(output string) (bool, error) {
	normalized := strings.Join(strings.Fields(output), " ")
	idx := strings.Index(normalized, numLockMarker)
	if idx < 0 {
		return false, errNoNumLock
	}
	rest := strings.TrimSpace(normalized[idx+len(numLockMarker):])
	switch {
	case strings.HasPrefix(rest, "on"):
		return true, nil
	case strings.HasPrefix(rest, "off"):
		return false, nil
	}
	return false, fmt.Errorf("unexpected Num Lock value in xset output: %q", firstWord(rest))
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
