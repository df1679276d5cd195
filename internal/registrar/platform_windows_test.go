//go:build windows

package registrar

import (
	"errors"
	"testing"

	"golang.org/x/sys/windows/registry"
)

type fakeRunKey struct {
	values map[string]string
	closed int
}

func (k *fakeRunKey) GetValue(name string, buf []byte) (int, uint32, error) {
	v, ok := k.values[name]
	if !ok {
		return 0, 0, registry.ErrNotExist
	}
	return len(v) * 2, registry.SZ, nil
}

func (k *fakeRunKey) SetStringValue(name, value string) error {
	k.values[name] = value
	return nil
}

func (k *fakeRunKey) DeleteValue(name string) error {
	if _, ok := k.values[name]; !ok {
		return registry.ErrNotExist
	}
	delete(k.values, name)
	return nil
}

func (k *fakeRunKey) Close() error {
	k.closed++
	return nil
}

func TestRunKeyRoundTrip(t *testing.T) {
	key := &fakeRunKey{values: map[string]string{}}
	r := &RunKey{
		valueName: "NumLockTray",
		command:   CommandLine(`C:\Program Files\NumLockTray\numlocktray.exe`, AutostartFlag),
		open:      func(bool) (runKey, error) { return key, nil },
	}

	if r.IsEnabled() {
		t.Fatal("IsEnabled() = true on empty key")
	}
	if err := r.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled(false) on absent value error = %v", err)
	}
	if err := r.SetEnabled(true); err != nil {
		t.Fatalf("SetEnabled(true) error = %v", err)
	}
	if !r.IsEnabled() {
		t.Error("IsEnabled() = false after SetEnabled(true)")
	}
	want := `"C:\Program Files\NumLockTray\numlocktray.exe" --autostart`
	if got := key.values["NumLockTray"]; got != want {
		t.Errorf("stored command = %q, want %q", got, want)
	}
	if err := r.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled(false) error = %v", err)
	}
	if r.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
	if key.closed == 0 {
		t.Error("key was never closed")
	}
}

func TestRunKeyOpenError(t *testing.T) {
	r := &RunKey{
		valueName: "NumLockTray",
		open:      func(bool) (runKey, error) { return nil, errors.New("access denied") },
	}
	if r.IsEnabled() {
		t.Error("IsEnabled() = true when key cannot be opened")
	}
	if err := r.SetEnabled(true); err == nil {
		t.Error("SetEnabled(true) error = nil, want error")
	}
}
