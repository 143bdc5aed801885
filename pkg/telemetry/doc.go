// Package telemetry provides observability for Faraday.
//
// # Overview
//
// The telemetry package implements structured logging and Prometheus
// metrics collection for validation runs. It provides visibility into
// which validators executed, how long they took, and how many issues
// they produced, while keeping overhead negligible for one-shot CLI
// invocations.
//
// # Components
//
//   - logging: Structured logging built on log/slog
//   - metrics: Prometheus metrics collection for validation runs
//
// # Usage
//
//	logger, err := logging.New(&logging.Config{Level: "info", Format: "text"})
//	if err != nil {
//		return err
//	}
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	runner := validator.NewCheckRunner(net, registry,
//		validator.WithLogger(logger.Slog()),
//		validator.WithRecorder(collector),
//	)
package telemetry
