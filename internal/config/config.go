package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTolerance = 1e-10
	DefaultMaxIter   = 1000
	DefaultStrategy  = "inverse"
)

// Config describes one solve run, loadable from YAML.
type Config struct {
	Problem   string    `yaml:"problem"`
	Strategy  string    `yaml:"strategy"`
	Tolerance float64   `yaml:"tolerance"`
	MaxIter   int       `yaml:"max_iter"`
	Compiled  bool      `yaml:"compiled"`
	InitGuess []float64 `yaml:"init_guess"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:   "sine",
		Strategy:  DefaultStrategy,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Problem == "" {
		return fmt.Errorf("problem name is required")
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max_iter must be positive, got %d", c.MaxIter)
	}
	return nil
}
