package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/rpgstat/internal/exptable"
	"github.com/lawnchairsociety/rpgstat/internal/logger"
	"github.com/lawnchairsociety/rpgstat/internal/stat"
)

// StatDefinition for YAML parsing. A definition either lists its schedule in
// ExpTable, describes a polynomial Curve, or generates one from BaseExp and
// Multiplier. Omitted numbers fall back to Defaults.
type StatDefinition struct {
	DisplayName string       `yaml:"display_name"`
	MaxLevel    int          `yaml:"max_level" validate:"gte=0"`
	MinLevel    int          `yaml:"min_level" validate:"gte=0"`
	BaseExp     *float64     `yaml:"base_exp" validate:"omitempty,gte=0"`
	Multiplier  *float64     `yaml:"multiplier" validate:"omitempty,gte=0"`
	ExpTable    []float64    `yaml:"exp_table" validate:"omitempty,dive,gte=0"`
	Curve       *CurveConfig `yaml:"curve" validate:"omitempty"`
}

// CurveConfig for YAML parsing
type CurveConfig struct {
	Base     float64 `yaml:"base" validate:"gt=0"`
	Exponent float64 `yaml:"exponent" validate:"gt=0"`
}

// StatsConfig represents the stats.yaml structure
type StatsConfig struct {
	Stats map[string]StatDefinition `yaml:"stats" validate:"dive"`
}

// Defaults fill in values a definition leaves out.
type Defaults struct {
	MaxLevel   int
	BaseExp    float64
	Multiplier float64
}

// LoadDefinitionsFromYAML loads stat definitions from a YAML file
func LoadDefinitionsFromYAML(filename string) (*StatsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	var config StatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse stats YAML: %w", err)
	}

	if err := ValidateDefinitions(&config); err != nil {
		return nil, err
	}

	logger.Info("Loaded stat definitions", "count", len(config.Stats), "file", filename)
	return &config, nil
}

// ValidateDefinitions checks every definition's field constraints.
func ValidateDefinitions(config *StatsConfig) error {
	err := validator.New().Struct(config)
	if err == nil {
		return checkBounds(config)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s must satisfy %s%s", e.Namespace(), e.Tag(), param(e.Param())))
	}
	return fmt.Errorf("invalid stat definitions: %s", strings.Join(problems, "; "))
}

func param(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

// checkBounds catches min_level > max_level, which struct tags can't express
// once max_level may be omitted.
func checkBounds(config *StatsConfig) error {
	for name, def := range config.Stats {
		if def.MaxLevel > 0 && def.MinLevel > def.MaxLevel {
			return fmt.Errorf("stat %q: min_level %d exceeds max_level %d", name, def.MinLevel, def.MaxLevel)
		}
	}
	return nil
}

// LoadFromConfig creates one stat per definition, in name order, and
// registers them only if every definition builds. On error nothing is
// registered.
func (r *Registry) LoadFromConfig(config *StatsConfig, defaults Defaults) ([]*stat.Progression, error) {
	names := make([]string, 0, len(config.Stats))
	for name := range config.Stats {
		names = append(names, name)
	}
	sort.Strings(names)

	created := make([]*stat.Progression, 0, len(names))
	for _, name := range names {
		def := config.Stats[name]
		s, err := buildStat(name, &def, defaults)
		if err != nil {
			return nil, err
		}
		created = append(created, s)
	}

	for _, s := range created {
		r.Register(s)
	}
	return created, nil
}

// LoadFromYAML loads definitions from a YAML file and registers them.
func (r *Registry) LoadFromYAML(filename string, defaults Defaults) ([]*stat.Progression, error) {
	config, err := LoadDefinitionsFromYAML(filename)
	if err != nil {
		return nil, err
	}
	return r.LoadFromConfig(config, defaults)
}

func buildStat(name string, def *StatDefinition, defaults Defaults) (*stat.Progression, error) {
	maxLevel := def.MaxLevel
	if maxLevel == 0 {
		maxLevel = defaults.MaxLevel
	}
	if maxLevel < 1 {
		return nil, fmt.Errorf("stat %q: no max_level and no default", name)
	}
	if def.MinLevel > maxLevel {
		return nil, fmt.Errorf("stat %q: min_level %d exceeds max_level %d", name, def.MinLevel, maxLevel)
	}

	var table *exptable.Table
	switch {
	case len(def.ExpTable) > 0:
		table = exptable.New(def.ExpTable...)
	case def.Curve != nil:
		table = exptable.Curve{Base: def.Curve.Base, Exponent: def.Curve.Exponent}.Table(maxLevel)
	default:
		baseExp := defaults.BaseExp
		if def.BaseExp != nil {
			baseExp = *def.BaseExp
		}
		multiplier := defaults.Multiplier
		if def.Multiplier != nil {
			multiplier = *def.Multiplier
		}
		table = exptable.GenerateFromMultiplier(baseExp, multiplier, maxLevel)
	}

	s := stat.NewWithSchedule(name, maxLevel, table)
	if def.DisplayName != "" {
		s.SetDisplayName(def.DisplayName)
	}
	if def.MinLevel > 0 {
		s.SetMinLevel(def.MinLevel, false)
	}
	return s, nil
}
