package config

// Config is the root configuration structure for the faraday CLI.
type Config struct {
	// Validation contains the default validator selection applied when the
	// validate command is run without explicit filter flags.
	Validation ValidationConfig `yaml:"validation"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the Prometheus metrics collector.
	Metrics MetricsConfig `yaml:"metrics"`
}

// ValidationConfig contains defaults for validator selection and the
// failure policy.
type ValidationConfig struct {
	// Categories restricts default runs to the named validator categories.
	// Empty means all categories.
	Categories []string `yaml:"categories"`

	// Include restricts default runs to the named validators.
	Include []string `yaml:"include"`

	// Exclude removes the named validators from default runs.
	Exclude []string `yaml:"exclude"`

	// ContinueOnFailure records a failing validator as an ERROR issue and
	// proceeds, instead of aborting the run.
	// Default: false
	ContinueOnFailure bool `yaml:"continue_on_failure"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json", "text" or "console".
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus metrics collector.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "faraday"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric name subsystem segment.
	// Default: "validation"
	Subsystem string `yaml:"subsystem"`
}
