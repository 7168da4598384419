package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EngineConfig holds settings for building and observing stats.
type EngineConfig struct {
	Stats   StatsConfig   `yaml:"stats"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StatsConfig controls where stat definitions come from and the values used
// when a definition leaves a field out.
type StatsConfig struct {
	// DefinitionsPath is the YAML file listing the stats to create.
	DefinitionsPath string `yaml:"definitions_path" validate:"required"`

	// DefaultMaxLevel applies to definitions without max_level.
	DefaultMaxLevel int `yaml:"default_max_level" validate:"gte=1"`

	// DefaultBaseExp is the level 0 requirement for generated schedules.
	DefaultBaseExp float64 `yaml:"default_base_exp" validate:"gte=0"`

	// DefaultMultiplier is the growth factor for generated schedules.
	// Values of 1 or less are read as a percentage increase per level.
	DefaultMultiplier float64 `yaml:"default_multiplier" validate:"gte=0"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`
}

// DefaultConfig returns an EngineConfig with the standard defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Stats: StatsConfig{
			DefinitionsPath:   "data/stats.yaml",
			DefaultMaxLevel:   50,
			DefaultBaseExp:    100,
			DefaultMultiplier: 1.5,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "rpgstat",
		},
	}
}

// LoadConfig loads engine configuration from a YAML file.
// If the file doesn't exist, returns default config. If it can't be parsed
// or fails validation, returns default config and the error.
func LoadConfig(path string) (*EngineConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks field constraints.
func (c *EngineConfig) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed %q", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("invalid engine config: %s", strings.Join(problems, "; "))
}
