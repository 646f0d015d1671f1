// Package config loads and saves the user configuration file. The
// core packages never read it directly; main resolves a Config and
// hands the relevant values down.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jchau/itin/internal/domain"
)

// Config is the top-level application configuration.
type Config struct {
	// DayStart is the start time given to the first item of an empty
	// itinerary, "HH:MM".
	DayStart string `yaml:"day_start"`

	// DefaultDurationMin is the duration, in minutes, a freshly created
	// item starts with.
	DefaultDurationMin int `yaml:"default_duration_min"`

	// WakeAt/SleepAt bound the awake window for grid export, "HH:MM".
	// Unoccupied slots outside the window get RestLabel.
	WakeAt  string `yaml:"wake_at"`
	SleepAt string `yaml:"sleep_at"`

	// RestLabel fills unoccupied slots outside the awake window.
	RestLabel string `yaml:"rest_label"`

	// DefaultTransitMode preselects the mode in transit forms.
	DefaultTransitMode string `yaml:"default_transit_mode"`
}

// DefaultConfig returns the in-memory defaults.
func DefaultConfig() *Config {
	return &Config{
		DayStart:           "09:00",
		DefaultDurationMin: 60,
		WakeAt:             "10:00",
		SleepAt:            "21:00",
		RestLabel:          "rest",
		DefaultTransitMode: string(domain.ModeMetro),
	}
}

// DefaultPath returns ~/.itin/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".itin", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults
// and writes them out so the user has something to edit. Unset fields
// in an existing file fall back to their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		if werr := Save(path, cfg); werr != nil {
			return nil, werr
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the config with 0600 permissions, creating the parent
// directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.DayStart == "" {
		c.DayStart = def.DayStart
	}
	if c.DefaultDurationMin <= 0 {
		c.DefaultDurationMin = def.DefaultDurationMin
	}
	if c.WakeAt == "" {
		c.WakeAt = def.WakeAt
	}
	if c.SleepAt == "" {
		c.SleepAt = def.SleepAt
	}
	if c.RestLabel == "" {
		c.RestLabel = def.RestLabel
	}
	if c.DefaultTransitMode == "" {
		c.DefaultTransitMode = def.DefaultTransitMode
	}
}

// DayStartTime parses DayStart, falling back to 09:00 on bad input.
func (c *Config) DayStartTime() domain.TimeOfDay {
	t, err := domain.ParseTimeOfDay(c.DayStart)
	if err != nil {
		return domain.NewTimeOfDay(9, 0)
	}
	return t
}

// AwakeWindowTimes parses the awake window bounds, falling back to the
// 10:00–21:00 defaults on bad input.
func (c *Config) AwakeWindowTimes() (wake, sleep domain.TimeOfDay) {
	wake, sleep = domain.NewTimeOfDay(10, 0), domain.NewTimeOfDay(21, 0)
	if t, err := domain.ParseTimeOfDay(c.WakeAt); err == nil {
		wake = t
	}
	if t, err := domain.ParseTimeOfDay(c.SleepAt); err == nil {
		sleep = t
	}
	return wake, sleep
}
