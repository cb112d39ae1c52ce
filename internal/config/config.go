package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the host-tunable settings. Everything has a working default;
// the file is optional.
type Config struct {
	// TickIntervalMs is the animation tick period for stepped simulations.
	TickIntervalMs int `yaml:"tick_interval_ms"`

	// Database overrides the SQLite database path.
	Database string `yaml:"database"`

	// PassThresholds overrides per-lesson quiz pass thresholds by lesson id.
	PassThresholds map[string]int `yaml:"pass_thresholds"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TickIntervalMs: 40,
	}
}

// TickInterval returns the animation tick period, falling back to the
// default for non-positive overrides.
func (c Config) TickInterval() time.Duration {
	if c.TickIntervalMs <= 0 {
		return time.Duration(Default().TickIntervalMs) * time.Millisecond
	}
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// PassThreshold returns the configured override for a lesson, or fallback
// when none is set or the override is out of range.
func (c Config) PassThreshold(lessonID string, fallback, questionCount int) int {
	t, ok := c.PassThresholds[lessonID]
	if !ok || t < 1 || t > questionCount {
		return fallback
	}
	return t
}

// Load reads the config file at path. A missing file is not an error; it
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// $SPARKLAB_CONFIG, then $XDG_CONFIG_HOME/sparklab/config.yaml,
// then ~/.config/sparklab/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("SPARKLAB_CONFIG"); p != "" {
		return p, nil
	}
	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "sparklab", "config.yaml"), nil
}
