package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// ScannerConfig holds scanner-related settings.
type ScannerConfig struct {
	// DisabledTypes lists PiiType tag strings (e.g. "ADDRESS", "URL_SECRET")
	// the scanner should start with disabled.
	DisabledTypes []string `yaml:"disabled_types"`

	// ExtraWhitelistNames extends the shipped public-figures whitelist
	// with additional names the NAME detector should never flag.
	ExtraWhitelistNames []string `yaml:"extra_whitelist_names"`
}

// LoggingConfig holds logging-related settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the top-level pii-guard configuration.
type Config struct {
	Scanner ScannerConfig `yaml:"scanner"`
	Logging LoggingConfig `yaml:"logging"`
}

// validLogLevels enumerates accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads a YAML configuration file from path and returns a Config.
// Missing optional fields are filled from DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every disabled type is a recognised PiiType and
// that the log level is recognised.
func (c *Config) Validate() error {
	for i, name := range c.Scanner.DisabledTypes {
		if !pii.PiiType(name).Valid() {
			return fmt.Errorf("config: disabled_types[%d]: unknown PII type %q", i, name)
		}
	}

	for i, name := range c.Scanner.ExtraWhitelistNames {
		if name == "" {
			return fmt.Errorf("config: extra_whitelist_names[%d]: empty name", i)
		}
	}

	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("config: unknown log level %q (want debug|info|warn|error)", c.Logging.Level)
	}

	return nil
}
