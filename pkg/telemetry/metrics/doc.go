/*
Package metrics provides Prometheus metrics for the validation engine.

The Collector implements the validator.Recorder interface, so it plugs
straight into a CheckRunner:

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(&cfg.Metrics, registry)
	runner := validator.NewCheckRunner(net, reg, validator.WithRecorder(collector))

Metrics (with the default namespace/subsystem):
  - faraday_validation_runs_total{status}
  - faraday_validation_run_duration_seconds
  - faraday_validation_validator_executions_total{validator}
  - faraday_validation_issues_total{validator,severity}
*/
package metrics
