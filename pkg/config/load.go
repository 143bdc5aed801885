package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path, applies
// defaults and environment variable overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides of the form
// FARADAY_SECTION_FIELD. Environment variables take precedence over file
// values.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("FARADAY_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("FARADAY_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("FARADAY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("FARADAY_VALIDATION_CONTINUE_ON_FAILURE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Validation.ContinueOnFailure = b
		}
	}
	if val := os.Getenv("FARADAY_VALIDATION_CATEGORIES"); val != "" {
		cfg.Validation.Categories = splitList(val)
	}
	if val := os.Getenv("FARADAY_VALIDATION_INCLUDE"); val != "" {
		cfg.Validation.Include = splitList(val)
	}
	if val := os.Getenv("FARADAY_VALIDATION_EXCLUDE"); val != "" {
		cfg.Validation.Exclude = splitList(val)
	}
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
