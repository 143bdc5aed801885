package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"voltaic-hq/faraday/pkg/config"
	"voltaic-hq/faraday/pkg/validator"
)

// Collector records validation run metrics. It implements
// validator.Recorder and registers its metrics with the provided Prometheus
// registry. If registry is nil, a new registry is created.
type Collector struct {
	registry *prometheus.Registry

	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
	validatorsTotal   *prometheus.CounterVec
	validatorDuration *prometheus.HistogramVec
	issuesTotal       *prometheus.CounterVec
}

// NewCollector creates a metrics collector. Namespace and subsystem default
// to "faraday" and "validation" when cfg leaves them empty.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "faraday"
	}
	subsystem := cfg.Subsystem
	if subsystem == "" {
		subsystem = "validation"
	}

	c := &Collector{
		registry: registry,
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of validation runs by outcome",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Duration of validation runs in seconds",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
			},
		),
		validatorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "validator_executions_total",
				Help:      "Total number of validator executions",
			},
			[]string{"validator"},
		),
		validatorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "validator_duration_seconds",
				Help:      "Duration of individual validator executions in seconds",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
			},
			[]string{"validator"},
		),
		issuesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "issues_total",
				Help:      "Total number of issues found by validator and severity",
			},
			[]string{"validator", "severity"},
		),
	}

	registry.MustRegister(
		c.runsTotal,
		c.runDuration,
		c.validatorsTotal,
		c.validatorDuration,
		c.issuesTotal,
	)
	return c
}

// Registry returns the Prometheus registry the collector registered with.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// RecordRun records one completed run attempt.
func (c *Collector) RecordRun(status string, duration time.Duration) {
	c.runsTotal.WithLabelValues(status).Inc()
	c.runDuration.Observe(duration.Seconds())
}

// RecordValidator records one validator execution.
func (c *Collector) RecordValidator(name string, duration time.Duration) {
	c.validatorsTotal.WithLabelValues(name).Inc()
	c.validatorDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// RecordIssue records one emitted issue.
func (c *Collector) RecordIssue(validatorName string, severity validator.Severity) {
	c.issuesTotal.WithLabelValues(validatorName, severity.String()).Inc()
}
