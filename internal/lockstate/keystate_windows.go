//go:build windows

package lockstate

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const vkNumLock = 0x90

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procGetKeyState = user32.NewProc("GetKeyState")
)

// KeyStateStrategy asks user32 GetKeyState for the VK_NUMLOCK toggle bit.
type KeyStateStrategy struct{}

// Name implements Strategy.
func (KeyStateStrategy) Name() string { return "GetKeyState" }

// Query implements Strategy.
func (KeyStateStrategy) Query() (bool, error) {
	if err := procGetKeyState.Find(); err != nil {
		return false, fmt.Errorf("GetKeyState: %w", err)
	}
	ret, _, _ := procGetKeyState.Call(uintptr(vkNumLock))
	return ret&1 != 0, nil
}

func platformChain() Chain {
	return Chain{KeyStateStrategy{}}
}
