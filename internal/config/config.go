// Package config loads and validates training run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Epochs     int     `yaml:"epochs"`
	BatchSize  int     `yaml:"batch_size"`
	LR         float32 `yaml:"lr"`
	HiddenSize int     `yaml:"hidden_size"`
	Samples    int     `yaml:"samples"`
	Classes    int     `yaml:"classes"`
	Features   int     `yaml:"features"`
	Spread     float64 `yaml:"spread"`
	Seed       int64   `yaml:"seed"`
	LogEvery   int     `yaml:"log_every"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Epochs    int
	BatchSize int
	LR        float64
	Seed      int64
	LogEvery  int
}

// Default returns a config that trains a small classifier on synthetic
// data with no further input.
func Default() *Config {
	return &Config{
		Epochs:     10,
		BatchSize:  16,
		LR:         0.01,
		HiddenSize: 32,
		Samples:    300,
		Classes:    3,
		Features:   2,
		Spread:     0.5,
		Seed:       42,
		LogEvery:   10,
	}
}

// Load reads and validates a Config from YAML. Keys absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.LR > 0 {
		c.LR = float32(o.LR)
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.LR <= 0 {
		return fmt.Errorf("lr must be > 0 (got %g)", c.LR)
	}
	if c.HiddenSize <= 0 {
		return fmt.Errorf("hidden_size must be > 0 (got %d)", c.HiddenSize)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	if c.Classes < 2 {
		return fmt.Errorf("classes must be >= 2 (got %d)", c.Classes)
	}
	if c.Features <= 0 {
		return fmt.Errorf("features must be > 0 (got %d)", c.Features)
	}
	if c.Spread < 0 {
		return fmt.Errorf("spread must be >= 0 (got %g)", c.Spread)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 50
	}
	return nil
}
