package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the entity description
// engine. All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig contains resolution engine settings.
type EngineConfig struct {
	// CacheCapacity bounds the lookup result cache. Zero selects the
	// engine default (512 entries).
	CacheCapacity int `yaml:"cache_capacity"`

	// ValidateOnStart runs rule table validation during bootstrap and
	// logs one warning per duplicate description key.
	ValidateOnStart bool `yaml:"validate_on_start"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
	Output string `yaml:"output"` // stdout or stderr
}

// Load reads, parses, and validates the configuration from a YAML file.
//
// Values not present in the file keep their defaults. Environment
// variables override file values and follow the pattern
// ENTITYCORE_SECTION_KEY, e.g. ENTITYCORE_LOG_LEVEL,
// ENTITYCORE_ENGINE_CACHE_CAPACITY.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration, used when no config file is
// given. Environment overrides still apply.
func Default() *Config {
	cfg := defaultConfig()
	applyEnvOverrides(cfg)
	return cfg
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			CacheCapacity:   512,
			ValidateOnStart: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ENTITYCORE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ENTITYCORE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ENTITYCORE_ENGINE_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.CacheCapacity = n
		}
	}
	if v := os.Getenv("ENTITYCORE_ENGINE_VALIDATE_ON_START"); v != "" {
		cfg.Engine.ValidateOnStart = v == "true" || v == "1"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Engine.CacheCapacity < 0 {
		errs = append(errs, "engine.cache_capacity must not be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "logging.level must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
