/*
Package logging provides structured logging for the faraday toolkit.

The Logger wraps log/slog with configurable level and output format. The
underlying *slog.Logger is exposed for components that accept one directly,
such as the validation CheckRunner:

	logger, err := logging.New(logging.Config{Level: "debug", Format: "json"})
	if err != nil {
		log.Fatal(err)
	}
	runner := validator.NewCheckRunner(net, reg, validator.WithLogger(logger.Slog()))
*/
package logging
