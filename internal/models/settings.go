package models

import "time"

// DefaultPollInterval is how often the tray re-reads the Num Lock state.
const DefaultPollInterval = 300 * time.Millisecond

// DefaultInactiveColor is the fill applied to the LED element of the icon asset when Num Lock is off.
const DefaultInactiveColor = "#4a4a4a"

// IconConfig holds icon rendering overrides.
type IconConfig struct {
	Asset         string `yaml:"asset,omitempty"` // empty = assets/numlock.svg next to the executable
	InactiveColor string `yaml:"inactive_color"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	OnChange bool `yaml:"on_change"`
}

// Settings represents the user's tray settings.
// This corresponds to <UserConfigDir>/numlocktray/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	PollInterval  time.Duration       `yaml:"poll_interval"`
	Icon          IconConfig          `yaml:"icon"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:      1,
		PollInterval: DefaultPollInterval,
		Icon: IconConfig{
			InactiveColor: DefaultInactiveColor,
		},
		Notifications: NotificationsConfig{
			OnChange: false,
		},
	}
}

// Normalize replaces unusable values with defaults.
func (s *Settings) Normalize() {
	if s.PollInterval <= 0 {
		s.PollInterval = DefaultPollInterval
	}
	if !IsHexColor(s.Icon.InactiveColor) {
		s.Icon.InactiveColor = DefaultInactiveColor
	}
}
