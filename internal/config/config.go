// Package config provides configuration management for divgame experiments.
// Values come from built-in defaults, an optional YAML file and DIVGAME_*
// environment variables, in that order; CLI flags are applied last by the
// caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/divgame/internal/logging"
)

// Variants of the division game.
const (
	VariantHomogeneous   = "homogeneous"
	VariantHeterogeneous = "heterogeneous"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full experiment configuration.
type Config struct {
	// Graphs controls where instances live and how they are generated.
	Graphs GraphsConfig `yaml:"graphs"`

	// Simulation controls the division game itself.
	Simulation SimulationConfig `yaml:"simulation"`

	// Output selects result sinks.
	Output OutputConfig `yaml:"output"`

	// Workers is the number of instances simulated concurrently.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// GraphsConfig describes the instance set: sizes MinSize..MaxSize, Instances
// files per size, located by Dir and Pattern.
type GraphsConfig struct {
	Dir string `yaml:"dir"`

	// Pattern is a fmt format taking (size, size, k).
	Pattern string `yaml:"pattern"`

	MinSize   int `yaml:"min_size"`
	MaxSize   int `yaml:"max_size"`
	Instances int `yaml:"instances"`

	// Probability is the extra-edge probability used by "generate".
	Probability float64 `yaml:"probability"`
}

// SimulationConfig holds the per-trial parameters.
type SimulationConfig struct {
	Variant   string  `yaml:"variant"`
	Threshold float64 `yaml:"threshold"`
	Trials    int     `yaml:"trials"`
	MaxSteps  int     `yaml:"max_steps"`
	Seed      int64   `yaml:"seed"`

	// StallDetection ends a trial at the first step that commits no vertex.
	StallDetection bool `yaml:"stall_detection"`
}

// OutputConfig selects where rows go. SQLite is optional.
type OutputConfig struct {
	CSV    string `yaml:"csv"`
	SQLite string `yaml:"sqlite,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level: trace, debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the configuration of the reference experiment: sizes 5-20,
// 15 instances each, 20 trials, 5000-step cap, heterogeneous capacities.
func Default() *Config {
	return &Config{
		Graphs: GraphsConfig{
			Dir:         "data/networks",
			Pattern:     "random_%d/random_%d_%d.edgelist",
			MinSize:     5,
			MaxSize:     20,
			Instances:   15,
			Probability: 0.01,
		},
		Simulation: SimulationConfig{
			Variant:   VariantHeterogeneous,
			Threshold: 0.5,
			Trials:    20,
			MaxSteps:  5000,
			Seed:      1,
		},
		Output: OutputConfig{
			CSV: "data/data_all_random.csv",
		},
		Workers: 1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns Default, overlaid with the YAML file at path when path is
// non-empty, then with environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file. Missing keys keep their
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Graphs.Pattern == "" {
		return fmt.Errorf("%w: graphs.pattern is empty", ErrInvalid)
	}
	if c.Graphs.MinSize < 3 {
		return fmt.Errorf("%w: graphs.min_size must be at least 3, got %d", ErrInvalid, c.Graphs.MinSize)
	}
	if c.Graphs.MaxSize < c.Graphs.MinSize {
		return fmt.Errorf("%w: graphs.max_size %d < min_size %d", ErrInvalid, c.Graphs.MaxSize, c.Graphs.MinSize)
	}
	if c.Graphs.Instances < 1 {
		return fmt.Errorf("%w: graphs.instances must be positive, got %d", ErrInvalid, c.Graphs.Instances)
	}
	if c.Graphs.Probability < 0 || c.Graphs.Probability > 1 {
		return fmt.Errorf("%w: graphs.probability must be between 0 and 1, got %f", ErrInvalid, c.Graphs.Probability)
	}

	switch c.Simulation.Variant {
	case VariantHomogeneous, VariantHeterogeneous:
	default:
		return fmt.Errorf("%w: simulation.variant %q (valid: %s, %s)",
			ErrInvalid, c.Simulation.Variant, VariantHomogeneous, VariantHeterogeneous)
	}
	if c.Simulation.Threshold < 0 || c.Simulation.Threshold > 1 {
		return fmt.Errorf("%w: simulation.threshold must be between 0 and 1, got %f", ErrInvalid, c.Simulation.Threshold)
	}
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("%w: simulation.trials must be positive, got %d", ErrInvalid, c.Simulation.Trials)
	}
	if c.Simulation.MaxSteps < 1 {
		return fmt.Errorf("%w: simulation.max_steps must be positive, got %d", ErrInvalid, c.Simulation.MaxSteps)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	if c.Output.CSV == "" {
		return fmt.Errorf("%w: output.csv is empty", ErrInvalid)
	}
	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: invalid log level: %s (valid: trace, debug, info, warn, error)", ErrInvalid, c.Logging.Level)
	}

	return nil
}

// GraphPath returns the edge-list path of instance k of size n.
func (c *Config) GraphPath(n, k int) string {
	return filepath.Join(c.Graphs.Dir, fmt.Sprintf(c.Graphs.Pattern, n, n, k))
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DIVGAME_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DIVGAME_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}

	if v := os.Getenv("DIVGAME_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DIVGAME_WORKERS: %w", err)
		}
		cfg.Workers = n
	}

	if v := os.Getenv("DIVGAME_VARIANT"); v != "" {
		cfg.Simulation.Variant = strings.ToLower(v)
	}

	if v := os.Getenv("DIVGAME_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}
