// Package config handles configuration loading and path management.
package config

import (
	"os"
	"path/filepath"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
)

const (
	// AssetsDirName is the directory next to the executable holding optional assets.
	AssetsDirName = "assets"

	// IconAssetName is the vector icon looked up in AssetsDirName.
	IconAssetName = "numlock.svg"

	// AutostartDirName is the XDG autostart directory inside the config home.
	AutostartDirName = "autostart"

	// ApplicationsDirName is the XDG applications directory inside the data home.
	ApplicationsDirName = "applications"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	DesktopFileName  = buildinfo.AppName + ".desktop"
)

// GlobalDir returns the per-user settings directory (<UserConfigDir>/numlocktray/).
func GlobalDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, buildinfo.AppName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// ConfigHome returns $XDG_CONFIG_HOME, or ~/.config when unset.
func ConfigHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// DataHome returns $XDG_DATA_HOME, or ~/.local/share when unset.
func DataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// AutostartDir returns the XDG autostart directory (~/.config/autostart).
func AutostartDir() (string, error) {
	dir, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AutostartDirName), nil
}

// ApplicationsDir returns the XDG applications directory (~/.local/share/applications).
func ApplicationsDir() (string, error) {
	dir, err := DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ApplicationsDirName), nil
}

// Executable returns the absolute path of the running binary with symlinks resolved.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// IconAssetPath returns assets/numlock.svg relative to the executable's directory.
func IconAssetPath() string {
	exe, err := Executable()
	if err != nil {
		return filepath.Join(AssetsDirName, IconAssetName)
	}
	return filepath.Join(filepath.Dir(exe), AssetsDirName, IconAssetName)
}
