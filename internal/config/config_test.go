package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Stats.DefinitionsPath != "data/stats.yaml" {
		t.Errorf("expected definitions path data/stats.yaml, got %q", cfg.Stats.DefinitionsPath)
	}
	if cfg.Stats.DefaultMaxLevel != 50 {
		t.Errorf("expected default max level 50, got %d", cfg.Stats.DefaultMaxLevel)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "rpgstat" {
		t.Errorf("expected metrics enabled under rpgstat, got %+v", cfg.Metrics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/engine.yaml")

	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}
	if cfg.Stats.DefaultMultiplier != 1.5 {
		t.Errorf("expected default multiplier 1.5, got %v", cfg.Stats.DefaultMultiplier)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configPath
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := writeConfig(t, `
stats:
  definitions_path: "custom/stats.yaml"
  default_max_level: 99
  default_multiplier: 0.25
metrics:
  enabled: false
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Stats.DefinitionsPath != "custom/stats.yaml" {
		t.Errorf("expected custom/stats.yaml, got %q", cfg.Stats.DefinitionsPath)
	}
	if cfg.Stats.DefaultMaxLevel != 99 {
		t.Errorf("expected max level 99, got %d", cfg.Stats.DefaultMaxLevel)
	}
	if cfg.Stats.DefaultMultiplier != 0.25 {
		t.Errorf("expected multiplier 0.25, got %v", cfg.Stats.DefaultMultiplier)
	}
	// Unset fields keep their defaults
	if cfg.Stats.DefaultBaseExp != 100 {
		t.Errorf("expected base exp 100, got %v", cfg.Stats.DefaultBaseExp)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "stats: [unclosed")

	cfg, err := LoadConfig(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
	if cfg == nil || cfg.Stats.DefaultMaxLevel != 50 {
		t.Errorf("expected defaults after parse failure, got %+v", cfg)
	}
}

func TestLoadConfig_FailsValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"zero max level", "stats:\n  default_max_level: 0\n", "DefaultMaxLevel"},
		{"negative base exp", "stats:\n  default_base_exp: -5\n", "DefaultBaseExp"},
		{"negative multiplier", "stats:\n  default_multiplier: -1\n", "DefaultMultiplier"},
		{"empty definitions path", "stats:\n  definitions_path: \"\"\n", "DefinitionsPath"},
		{"metrics without namespace", "metrics:\n  enabled: true\n  namespace: \"\"\n", "Namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}
