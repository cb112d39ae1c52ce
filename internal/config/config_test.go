package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickIntervalMs != Default().TickIntervalMs {
		t.Errorf("tick interval = %d, want default %d", cfg.TickIntervalMs, Default().TickIntervalMs)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "tick_interval_ms: 100\ndatabase: /tmp/alt.db\npass_thresholds:\n  overlay: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("tick interval = %v", cfg.TickInterval())
	}
	if cfg.Database != "/tmp/alt.db" {
		t.Errorf("database = %q", cfg.Database)
	}
	if got := cfg.PassThreshold("overlay", 8, 10); got != 9 {
		t.Errorf("overlay threshold = %d, want 9", got)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tick_interval_ms: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPassThresholdFallback(t *testing.T) {
	cfg := Config{PassThresholds: map[string]int{"a": 0, "b": 11, "c": 5}}
	tests := []struct {
		id   string
		want int
	}{
		{"a", 8},  // below range
		{"b", 8},  // above question count
		{"c", 5},  // valid override
		{"d", 8},  // unset
	}
	for _, tt := range tests {
		if got := cfg.PassThreshold(tt.id, 8, 10); got != tt.want {
			t.Errorf("PassThreshold(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestTickIntervalGuardsNonPositive(t *testing.T) {
	cfg := Config{TickIntervalMs: -5}
	if cfg.TickInterval() != 40*time.Millisecond {
		t.Errorf("tick interval = %v, want 40ms default", cfg.TickInterval())
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("SPARKLAB_CONFIG", "/etc/sparklab.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if p != "/etc/sparklab.yaml" {
		t.Errorf("path = %q", p)
	}

	t.Setenv("SPARKLAB_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err = DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if p != filepath.Join("/xdg", "sparklab", "config.yaml") {
		t.Errorf("path = %q", p)
	}
}
