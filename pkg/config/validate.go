package config

import "fmt"

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true, "console": true}
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level: unknown level %q (valid: debug, info, warn, error)", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format: unknown format %q (valid: json, text, console)", cfg.Logging.Format)
	}
	if cfg.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace: must not be empty")
	}

	// Include and exclude are contradictory for the same name; catch the
	// obvious misconfiguration early rather than at run time.
	excluded := make(map[string]bool, len(cfg.Validation.Exclude))
	for _, name := range cfg.Validation.Exclude {
		excluded[name] = true
	}
	for _, name := range cfg.Validation.Include {
		if excluded[name] {
			return fmt.Errorf("validation: %q is both included and excluded", name)
		}
	}
	return nil
}
