// Package config loads host configuration: logging, GUI mode, metrics, and the hooks to
// register at startup.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/rickchristie/apphook/logging"
)

const (
	// EnvPrefix prefixes every environment override, e.g. APPHOOK_LOG_LEVEL.
	EnvPrefix = "APPHOOK_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config is the host configuration.
type Config struct {
	Log     logging.Config `koanf:"log"`
	GUI     bool           `koanf:"gui"`
	Metrics MetricsConfig  `koanf:"metrics"`
	Hooks   []HookConfig   `koanf:"hooks"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// HookConfig registers one builtin hook kind under a name.
type HookConfig struct {
	Name string `koanf:"name"`
	Kind string `koanf:"kind"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: logging.DefaultConfig(),
	}
}

// Validate checks cross-field constraints the schema cannot express.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Hooks))
	for _, h := range c.Hooks {
		if seen[h.Name] {
			return fmt.Errorf("duplicate hook name %q", h.Name)
		}
		seen[h.Name] = true
	}
	return nil
}

// LoadFile loads configuration from a YAML file, then applies environment overrides.
// A missing file yields the defaults (plus environment overrides).
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Load(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(content) > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	cfg, err := Load(content)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Load parses YAML content, validates it against the config schema, then applies
// environment overrides.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (APPHOOK_LOG_LEVEL, APPHOOK_GUI, APPHOOK_METRICS_ENABLED)
//  2. YAML content
//  3. Defaults
func Load(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := validateRaw(k.Raw()); err != nil {
		return nil, err
	}

	// APPHOOK_LOG_LEVEL -> log.level, APPHOOK_METRICS_ENABLED -> metrics.enabled
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
