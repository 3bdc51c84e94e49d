// Package config loads dotbench settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dot/bench"
)

// DefaultTolerance is the relative tolerance used by `dotbench verify`.
const DefaultTolerance = 1e-9

// Config mirrors the YAML file. Every key is optional.
type Config struct {
	N            int      `yaml:"n"`
	Seed         uint64   `yaml:"seed"`
	Repeat       int      `yaml:"repeat"`
	Backends     []string `yaml:"backends"`
	Format       string   `yaml:"format"`
	Tolerance    float64  `yaml:"tolerance"`
	ForceGeneric bool     `yaml:"force_generic"`
}

// Default returns the reference settings.
func Default() *Config {
	b := bench.DefaultConfig()
	return &Config{
		N:         b.N,
		Seed:      b.Seed,
		Repeat:    b.Repeat,
		Backends:  b.Backends,
		Format:    string(bench.FormatText),
		Tolerance: DefaultTolerance,
	}
}

// Load reads filename over the defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}

	return cfg, nil
}

// Validate checks the settings that bench.Config does not cover.
func (c *Config) Validate() error {
	if _, err := bench.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %v", bench.ErrInvalidConfig, c.Tolerance)
	}
	return c.BenchConfig().Validate()
}

// BenchConfig returns the driver settings.
func (c *Config) BenchConfig() bench.Config {
	return bench.Config{
		N:        c.N,
		Seed:     c.Seed,
		Backends: append([]string(nil), c.Backends...),
		Repeat:   c.Repeat,
	}
}
