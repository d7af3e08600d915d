// Package config handles cache configuration from defaults, a TOML file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/krisalay/mind-reader/policy"
	"github.com/krisalay/mind-reader/registry"
	"github.com/rs/zerolog"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MINDREADER_"

// Config holds all application configuration.
type Config struct {
	LRU          LRUConfig          `toml:"bounded_lru" envPrefix:"LRU_"`
	WriteThrough WriteThroughConfig `toml:"write_through" envPrefix:"WRITE_THROUGH_"`
	LogLevel     string             `toml:"log_level" env:"LOG_LEVEL"`
}

// LRUConfig configures the bounded_lru caches.
type LRUConfig struct {
	Capacity int           `toml:"capacity" env:"CAPACITY"`
	TTL      time.Duration `toml:"ttl" env:"TTL"`
}

// WriteThroughConfig configures the write_through caches.
type WriteThroughConfig struct {
	TTL    time.Duration `toml:"ttl" env:"TTL"`
	Shards int           `toml:"shards" env:"SHARDS"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LRU: LRUConfig{
			Capacity: policy.DefaultCapacity,
			TTL:      policy.DefaultTTL,
		},
		WriteThrough: WriteThroughConfig{
			TTL:    policy.DefaultTTL,
			Shards: policy.DefaultShards,
		},
		LogLevel: zerolog.InfoLevel.String(),
	}
}

/*
Load builds and validates the configuration. Later sources override earlier
ones:

 1. built-in defaults
 2. the TOML file at path, when path is not empty
 3. MINDREADER_* environment variables
*/
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse is Load without validation, for callers that apply further
// overrides (command-line flags) and validate afterwards.
func Parse(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Registry().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

// Registry converts the configuration into per-policy cache settings.
func (c *Config) Registry() registry.Config {
	return registry.Config{
		BoundedLRU:   policy.Bounded(c.LRU.Capacity, c.LRU.TTL),
		WriteThrough: policy.Unbounded(c.WriteThrough.TTL, c.WriteThrough.Shards),
	}
}
