package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Pool    PoolConfig   `yaml:"pool"`
	Logging LogConfig    `yaml:"logging"`
	Output  OutputConfig `yaml:"output"`
}

// PoolConfig holds worker pool configuration.
type PoolConfig struct {
	Workers int `envconfig:"WORKERS" default:"4" yaml:"workers"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development"`
}

// OutputConfig holds output file naming configuration.
type OutputConfig struct {
	Suffix string `envconfig:"OUTPUT_SUFFIX" default:"_inverted" yaml:"suffix"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("rowpipe", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Pool: PoolConfig{
			Workers: 4,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Output: OutputConfig{
			Suffix: "_inverted",
		},
	}
}

// LoadFile overlays cfg with values from a YAML config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return c.Validate()
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Pool.Workers < 1 {
		return fmt.Errorf("pool: workers must be >= 1, got %d", c.Pool.Workers)
	}
	return nil
}
