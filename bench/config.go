package bench

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reference parameters, used when nothing overrides them.
const (
	DefaultSize       = 10_000_000
	DefaultIterations = 50
)

// Config controls a benchmark run.
type Config struct {
	// Size is the trial buffer length in elements.
	Size int `yaml:"size"`
	// Iterations is the number of timed fills per strategy.
	Iterations int `yaml:"iterations"`
	// Strategies restricts the run to the named strategies; empty
	// selects the full registry.
	Strategies []string `yaml:"strategies"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Iterations: DefaultIterations,
	}
}

// Load resolves the configuration: defaults first, then the optional
// YAML file at path, then FILLBENCH_* environment variables. Callers
// layer command-line flags on top themselves.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FILLBENCH_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse FILLBENCH_SIZE: %w", err)
		}

		c.Size = size
	}

	if v := os.Getenv("FILLBENCH_ITERATIONS"); v != "" {
		iters, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse FILLBENCH_ITERATIONS: %w", err)
		}

		c.Iterations = iters
	}

	if v := os.Getenv("FILLBENCH_STRATEGIES"); v != "" {
		var names []string
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}

		c.Strategies = names
	}

	return nil
}

// Validate rejects configurations the driver cannot run.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", c.Size)
	}

	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}

	return nil
}
