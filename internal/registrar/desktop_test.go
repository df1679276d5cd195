package registrar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDesktopFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "autostart") // not created yet
	r := NewDesktopFile(dir, "numlocktray.desktop", AutostartEntry(Options{Executable: "/opt/numlocktray/numlocktray"}))

	if r.IsEnabled() {
		t.Fatal("IsEnabled() = true before SetEnabled")
	}
	if err := r.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled(false) on absent registration error = %v", err)
	}

	if err := r.SetEnabled(true); err != nil {
		t.Fatalf("SetEnabled(true) error = %v", err)
	}
	if !r.IsEnabled() {
		t.Error("IsEnabled() = false after SetEnabled(true)")
	}

	data, err := os.ReadFile(r.Path())
	if err != nil {
		t.Fatalf("read desktop file: %v", err)
	}
	if !strings.Contains(string(data), "Exec=/opt/numlocktray/numlocktray --autostart\n") {
		t.Errorf("desktop file missing relaunch command:\n%s", data)
	}

	if err := r.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled(false) error = %v", err)
	}
	if r.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
	if err := r.SetEnabled(false); err != nil {
		t.Errorf("second SetEnabled(false) error = %v", err)
	}
}

func TestDesktopFileWriteError(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	parent := t.TempDir()
	blocker := filepath.Join(parent, "autostart")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewDesktopFile(blocker, "numlocktray.desktop", AutostartEntry(Options{Executable: "/bin/true"}))
	if err := r.SetEnabled(true); err == nil {
		t.Error("SetEnabled(true) error = nil, want error")
	}
	if r.IsEnabled() {
		t.Error("IsEnabled() = true after failed SetEnabled")
	}
}

func TestAutostartEntry(t *testing.T) {
	entry := AutostartEntry(Options{Executable: "/usr/bin/numlocktray", IconPath: "/usr/share/numlocktray/assets/numlock.svg"})
	got := entry.String()

	want := `[Desktop Entry]
Type=Application
Name=NumLockTray
Comment=Num Lock status tray icon
Exec=/usr/bin/numlocktray --autostart
Icon=/usr/share/numlocktray/assets/numlock.svg
Terminal=false
Hidden=false
NoDisplay=false
X-GNOME-Autostart-enabled=true
`
	if got != want {
		t.Errorf("AutostartEntry().String() =\n%s\nwant\n%s", got, want)
	}
}

func TestMenuEntry(t *testing.T) {
	got := MenuEntry(Options{Executable: "/usr/bin/numlocktray"}).String()

	for _, line := range []string{
		"Exec=/usr/bin/numlocktray\n",
		"Categories=Utility;\n",
		"Keywords=numlock;num lock;keyboard;tray;indicator;\n",
		"Terminal=false\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("MenuEntry() missing %q in:\n%s", line, got)
		}
	}
	if strings.Contains(got, "Icon=") {
		t.Error("MenuEntry() without icon path should omit Icon")
	}
	if strings.Contains(got, AutostartFlag) {
		t.Error("MenuEntry() must not pass the autostart flag")
	}
}

func TestExecLine(t *testing.T) {
	tests := []struct {
		name    string
		program string
		args    []string
		want    string
	}{
		{name: "plain", program: "/usr/bin/numlocktray", args: []string{"--autostart"}, want: "/usr/bin/numlocktray --autostart"},
		{name: "space", program: "/home/me/My Apps/numlocktray", want: `"/home/me/My Apps/numlocktray"`},
		{name: "dollar and quote", program: `/opt/a$b"c`, want: `"/opt/a\$b\"c"`},
		{name: "percent", program: "/opt/100%/tray", want: "/opt/100%%/tray"},
		{name: "backslash", program: `/opt/a\b`, want: `"/opt/a\\b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExecLine(tt.program, tt.args...); got != tt.want {
				t.Errorf("ExecLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDesktopEntryEscapesExecForStringLayer(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    string
	}{
		{name: "plain path untouched", program: "/usr/bin/numlocktray", want: `Exec=/usr/bin/numlocktray --autostart`},
		{name: "backslash in quoted arg", program: `/opt/my apps/num\lock`, want: `Exec="/opt/my apps/num\\\\lock" --autostart`},
		{name: "dollar in quoted arg", program: `/opt/a$b`, want: `Exec="/opt/a\\$b" --autostart`},
		{name: "quote in quoted arg", program: `/opt/a"b`, want: `Exec="/opt/a\\"b" --autostart`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutostartEntry(Options{Executable: tt.program}).String()
			if !strings.Contains(got, tt.want+"\n") {
				t.Errorf("desktop entry missing %s in:\n%s", tt.want, got)
			}
		})
	}
}

func TestDesktopEntryEscapesNewlines(t *testing.T) {
	got := DesktopEntry{Name: "Num\nLock", Exec: "x"}.String()
	if !strings.Contains(got, `Name=Num\nLock`+"\n") {
		t.Errorf("Name not escaped:\n%s", got)
	}
}

type fakeRegistrar struct {
	supported bool
	enabled   bool
	err       error
	sets      []bool
}

func (f *fakeRegistrar) Supported() bool { return f.supported }
func (f *fakeRegistrar) IsEnabled() bool { return f.enabled }

func (f *fakeRegistrar) SetEnabled(enable bool) error {
	f.sets = append(f.sets, enable)
	if f.err != nil {
		return f.err
	}
	f.enabled = enable
	return nil
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		reg      *fakeRegistrar
		enable   bool
		want     bool
		wantSets int
	}{
		{name: "enables", reg: &fakeRegistrar{supported: true}, enable: true, want: true, wantSets: 1},
		{name: "already enabled", reg: &fakeRegistrar{supported: true, enabled: true}, enable: true, want: false, wantSets: 0},
		{name: "unsupported", reg: &fakeRegistrar{}, enable: true, want: false, wantSets: 0},
		{name: "error is swallowed", reg: &fakeRegistrar{supported: true, err: errors.New("denied")}, enable: true, want: false, wantSets: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply("test", tt.reg, tt.enable); got != tt.want {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
			if len(tt.reg.sets) != tt.wantSets {
				t.Errorf("SetEnabled called %d times, want %d", len(tt.reg.sets), tt.wantSets)
			}
		})
	}

	if Apply("nil", nil, true) {
		t.Error("Apply(nil) = true")
	}
}

func TestUnsupported(t *testing.T) {
	var r Registrar = Unsupported{}
	if r.Supported() || r.IsEnabled() {
		t.Error("Unsupported reports support or enabled")
	}
	if err := r.SetEnabled(true); err != nil {
		t.Errorf("SetEnabled() error = %v", err)
	}
}
