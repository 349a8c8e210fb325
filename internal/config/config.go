package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/emergency-response/internal/domain/emergency"
	"github.com/oshokin/emergency-response/internal/logger"
)

// Config describes one simulation scenario.
type Config struct {
	// Name is a human-readable label used in logs and reports.
	Name string `yaml:"name"`
	// LogLevel is the level used while running this scenario.
	LogLevel string `yaml:"log_level"`
	// Rounds is the number of activation passes to run.
	Rounds int `yaml:"rounds"`
	// Severity is the initial condition of the emergency.
	Severity Severity `yaml:"severity"`
	// Plan is the ordered list of responses.
	Plan []Action `yaml:"plan"`
}

// Severity mirrors emergency.Severity with YAML field names.
type Severity struct {
	Health      float64 `yaml:"health"`
	Panic       float64 `yaml:"panic"`
	FireDamage  float64 `yaml:"fire_damage"`
	FloodDamage float64 `yaml:"flood_damage"`
	InjuryLevel float64 `yaml:"injury_level"`
}

// Action is a single entry of the response plan.
type Action struct {
	// Kind is one of firefighters, medics or rescue_team.
	Kind string `yaml:"action"`
	// Count is the resource count: units, staff or boats.
	Count int `yaml:"count"`
	// Delay, when positive, holds the action back until the given pass.
	Delay int `yaml:"delay,omitempty"`
}

const (
	// DefaultConfigFilename is the default scenario filename.
	DefaultConfigFilename = "emergency-scenario.yaml"

	// DefaultRounds is the number of activation passes when none is set.
	DefaultRounds = 1

	// DefaultLogLevel is used when the scenario does not set a level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for scenario files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")

	// ErrEmptyPlan is returned when a scenario has no response actions.
	ErrEmptyPlan = errors.New("response plan must contain at least one action")
	// ErrNegativeRounds is returned when the rounds count is negative.
	ErrNegativeRounds = errors.New("rounds must not be negative")
	// ErrInvalidSeverity is returned when a severity value is NaN or infinite.
	ErrInvalidSeverity = errors.New("severity values must be finite")
	// ErrInvalidLogLevel is returned for an unrecognised log level.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Load reads a scenario from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal scenario: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes a scenario to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}

	return nil
}

// Validate checks the scenario and fills in defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Rounds < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRounds, cfg.Rounds)
	}

	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	for _, f := range cfg.Severity.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s", ErrInvalidSeverity, f.name)
		}
	}

	if len(cfg.Plan) == 0 {
		return ErrEmptyPlan
	}

	for i, action := range cfg.Plan {
		if _, err := action.Response(); err != nil {
			return fmt.Errorf("plan[%d]: %w", i, err)
		}
	}

	return nil
}

// Response builds the domain response described by the action.
//
//nolint:ireturn // Plan entries are polymorphic by nature.
func (a Action) Response() (emergency.Response, error) {
	kind, err := emergency.ParseActionKind(a.Kind)
	if err != nil {
		return nil, err
	}

	return emergency.NewResponse(kind, a.Count, a.Delay)
}

// BuildEmergency creates a fresh emergency from the scenario.
// Every call returns independent responses, so delay counters are never shared.
func (c *Config) BuildEmergency() (*emergency.Emergency, error) {
	plan := make([]emergency.Response, 0, len(c.Plan))

	for i, action := range c.Plan {
		response, err := action.Response()
		if err != nil {
			return nil, fmt.Errorf("plan[%d]: %w", i, err)
		}

		plan = append(plan, response)
	}

	return emergency.New(c.Severity.Domain(), plan...), nil
}

// Domain converts the YAML severity to the domain type.
func (s Severity) Domain() emergency.Severity {
	return emergency.Severity{
		Health:      s.Health,
		Panic:       s.Panic,
		FireDamage:  s.FireDamage,
		FloodDamage: s.FloodDamage,
		InjuryLevel: s.InjuryLevel,
	}
}

// severityField pairs a YAML field name with its value.
type severityField struct {
	name  string
	value float64
}

// fields returns the severity values in file order.
func (s Severity) fields() []severityField {
	return []severityField{
		{name: "health", value: s.Health},
		{name: "panic", value: s.Panic},
		{name: "fire_damage", value: s.FireDamage},
		{name: "flood_damage", value: s.FloodDamage},
		{name: "injury_level", value: s.InjuryLevel},
	}
}
