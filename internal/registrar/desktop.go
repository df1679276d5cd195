package registrar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
)

// DesktopEntry is a freedesktop.org desktop entry of type Application.
type DesktopEntry struct {
	Name             string
	Comment          string
	Exec             string
	Icon             string
	Terminal         bool
	Hidden           bool
	NoDisplay        bool
	AutostartEnabled bool
	Categories       []string
	Keywords         []string
}

// String renders the entry in the desktop-entry key=value format. Values are
// written with the string escapes applied, so Exec holds ExecLine output as is.
func (e DesktopEntry) String() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", escapeValue(e.Name))
	if e.Comment != "" {
		fmt.Fprintf(&b, "Comment=%s\n", escapeValue(e.Comment))
	}
	fmt.Fprintf(&b, "Exec=%s\n", escapeValue(e.Exec))
	if e.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", escapeValue(e.Icon))
	}
	fmt.Fprintf(&b, "Terminal=%t\n", e.Terminal)
	fmt.Fprintf(&b, "Hidden=%t\n", e.Hidden)
	fmt.Fprintf(&b, "NoDisplay=%t\n", e.NoDisplay)
	if e.AutostartEnabled {
		b.WriteString("X-GNOME-Autostart-enabled=true\n")
	}
	if len(e.Categories) > 0 {
		fmt.Fprintf(&b, "Categories=%s;\n", strings.Join(e.Categories, ";"))
	}
	if len(e.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords=%s;\n", strings.Join(e.Keywords, ";"))
	}
	return b.String()
}

// valueEscaper applies the desktop-entry string escapes. They are undone
// before Exec unquoting, so a backslash inside a quoted Exec argument ends up
// as four backslashes in the file.
var valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

func escapeValue(v string) string {
	return valueEscaper.Replace(v)
}

// ExecLine builds an Exec value, quoting arguments that need it.
func ExecLine(program string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteExecArg(program))
	for _, a := range args {
		parts = append(parts, quoteExecArg(a))
	}
	return strings.Join(parts, " ")
}

// quoteExecArg applies the Exec key quoting rules, which sit below the string
// escapes: arguments with reserved characters are double-quoted, and `"`,
// '`', '$' and '\' are backslash-escaped inside.
// A literal '%' is doubled since it introduces field codes.
func quoteExecArg(arg string) string {
	arg = strings.ReplaceAll(arg, "%", "%%")
	if arg != "" && !strings.ContainsAny(arg, " \t\n\"'\\><~|&;$*?#()`") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '`', '$', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// AutostartEntry describes the entry placed in the XDG autostart directory.
func AutostartEntry(opts Options) DesktopEntry {
	return DesktopEntry{
		Name:             buildinfo.DisplayName,
		Comment:          "Num Lock status tray icon",
		Exec:             ExecLine(opts.Executable, AutostartFlag),
		Icon:             opts.IconPath,
		AutostartEnabled: true,
	}
}

// MenuEntry describes the entry placed in the XDG applications directory.
func MenuEntry(opts Options) DesktopEntry {
	return DesktopEntry{
		Name:       buildinfo.DisplayName,
		Comment:    "Show the Num Lock state in the system tray",
		Exec:       ExecLine(opts.Executable),
		Icon:       opts.IconPath,
		Categories: []string{"Utility"},
		Keywords:   []string{"numlock", "num lock", "keyboard", "tray", "indicator"},
	}
}

// DesktopFile is a registration backed by the presence of a desktop entry file.
type DesktopFile struct {
	dir   string
	name  string
	entry DesktopEntry
}

// NewDesktopFile creates a registrar for dir/name with the given content.
func NewDesktopFile(dir, name string, entry DesktopEntry) *DesktopFile {
	return &DesktopFile{dir: dir, name: name, entry: entry}
}

// Path implements Located.
func (d *DesktopFile) Path() string {
	return filepath.Join(d.dir, d.name)
}

// Supported implements Registrar.
func (d *DesktopFile) Supported() bool { return true }

// IsEnabled implements Registrar.
func (d *DesktopFile) IsEnabled() bool {
	_, err := os.Stat(d.Path())
	return err == nil
}

// SetEnabled implements Registrar.
func (d *DesktopFile) SetEnabled(enable bool) error {
	if !enable {
		if err := os.Remove(d.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", d.Path(), err)
		}
		return nil
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", d.dir, err)
	}
	if err := os.WriteFile(d.Path(), []byte(d.entry.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Path(), err)
	}
	return nil
}
