// Package config loads engine configuration from an optional YAML file plus
// environment overrides. The reference timezone (the zone schedule wall
// clocks are authored in) is configuration, never hardcoded by the engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines runtime configuration.
type Config struct {
	// ReferenceTimezone is the IANA zone schedules are authored in.
	ReferenceTimezone string `yaml:"reference_timezone"`
	// DisplayTimezone is the IANA zone times are rendered in (company or
	// viewer zone). Empty means same as the reference zone.
	DisplayTimezone string `yaml:"display_timezone"`
	DBPath          string `yaml:"db_path"`
	LogLevel        string `yaml:"log_level"`
	// RefreshSeconds is the dashboard re-aggregation cadence.
	RefreshSeconds int `yaml:"refresh_seconds"`
}

// Load reads configuration with defaults, then an optional YAML file, then
// environment variables, each layer overriding the last.
func Load() (Config, error) {
	cfg := Config{
		ReferenceTimezone: "America/Caracas",
		LogLevel:          "info",
		RefreshSeconds:    60,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".clockwise", "clockwise.db")
	} else {
		cfg.DBPath = "clockwise.db"
	}

	if path := os.Getenv("CLOCKWISE_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if tz := os.Getenv("CLOCKWISE_REFERENCE_TZ"); tz != "" {
		cfg.ReferenceTimezone = tz
	}
	if tz := os.Getenv("CLOCKWISE_DISPLAY_TZ"); tz != "" {
		cfg.DisplayTimezone = tz
	}
	if dbPath := os.Getenv("CLOCKWISE_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if level := os.Getenv("CLOCKWISE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if cfg.DisplayTimezone == "" {
		cfg.DisplayTimezone = cfg.ReferenceTimezone
	}
	return cfg, nil
}

// Zones resolves both configured timezone names.
func (c Config) Zones() (reference, display *time.Location, err error) {
	reference, err = time.LoadLocation(c.ReferenceTimezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid reference timezone %q: %w", c.ReferenceTimezone, err)
	}
	display, err = time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid display timezone %q: %w", c.DisplayTimezone, err)
	}
	return reference, display, nil
}

// RefreshInterval returns the dashboard refresh cadence as a duration.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RefreshSeconds) * time.Second
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
