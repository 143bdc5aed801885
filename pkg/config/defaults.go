package config

// Default returns a configuration with all default values applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields of cfg with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "faraday"
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = "validation"
	}
}
