package config

import (
	"log"

	"github.com/watchfire-io/numlocktray/internal/models"
)

// LoadSettings loads the settings from <UserConfigDir>/numlocktray/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom loads settings from path, filling unset values with defaults.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	if !FileExists(path) {
		return models.NewSettings(), nil
	}

	settings := models.NewSettings()
	if err := LoadYAML(path, settings); err != nil {
		return nil, err
	}
	if c := settings.Icon.InactiveColor; c != "" && !models.IsHexColor(c) {
		log.Printf("Ignoring icon.inactive_color %q in %s: not a #rgb or #rrggbb colour", c, path)
	}
	settings.Normalize()
	return settings, nil
}

// LoadSettingsOrDefault is LoadSettings that logs failures and falls back to defaults.
func LoadSettingsOrDefault() *models.Settings {
	settings, err := LoadSettings()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		return models.NewSettings()
	}
	return settings
}

// SaveSettings saves the settings to <UserConfigDir>/numlocktray/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
