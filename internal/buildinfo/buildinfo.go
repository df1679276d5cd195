// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

// AppName is the stable identifier used for registry values, desktop files and the config dir.
const AppName = "numlocktray"

// DisplayName is the human-readable application name.
const DisplayName = "NumLockTray"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
