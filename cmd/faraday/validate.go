package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"voltaic-hq/faraday/pkg/cli"
	"voltaic-hq/faraday/pkg/config"
	"voltaic-hq/faraday/pkg/network"
	"voltaic-hq/faraday/pkg/telemetry/metrics"
	"voltaic-hq/faraday/pkg/validator"
)

var validateFlags struct {
	file       string
	categories []string
	include    []string
	exclude    []string
	format     string
	keepGoing  bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a network model",
	Long: `Validate the structural and referential integrity of a network model.

The network is read from a faraday network document (JSON), all selected
validators run against it, and the findings are reported with severities.
The command fails when the report contains ERROR issues.

Examples:
  # Run all registered validators
  faraday validate --file network.json

  # Only the core reference-integrity validators
  faraday validate --file network.json --category core

  # Everything except the transformer check, as JSON for CI
  faraday validate --file network.json --exclude transformer_node_reference --format json

  # Keep going when a validator itself fails
  faraday validate --file network.json --keep-going`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "network document to validate")
	validateCmd.Flags().StringSliceVar(&validateFlags.categories, "category", nil, "only run validators in these categories")
	validateCmd.Flags().StringSliceVar(&validateFlags.include, "include", nil, "only run these validators")
	validateCmd.Flags().StringSliceVar(&validateFlags.exclude, "exclude", nil, "skip these validators")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.Flags().BoolVar(&validateFlags.keepGoing, "keep-going", false, "record a failing validator as an ERROR issue and continue")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateFlags.file == "" {
		return fmt.Errorf("--file must be specified")
	}

	format, err := cli.ParseOutputFormat(validateFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	net, err := network.LoadFile(validateFlags.file)
	if err != nil {
		return err
	}

	runner := buildRunner(cfg, net, logger.Slog())

	ctx := cli.SetupSignalHandler()
	report, err := runner.Run(ctx, buildOptions(cfg))
	if err != nil {
		// Engine failures (a crashed validator, a bad filter) are not
		// wrapped in CommandError: they exit with status 2, while a
		// network that failed validation exits with 1.
		return err
	}

	if err := outputReport(os.Stdout, report, format); err != nil {
		return err
	}

	if report.HasErrors() {
		return cli.NewCommandError("validate", fmt.Errorf("network is invalid: %s", report.Summary()))
	}
	return nil
}

// buildRunner assembles the CheckRunner from configuration and flags.
func buildRunner(cfg *config.Config, net *network.Network, log *slog.Logger) *validator.CheckRunner {
	opts := []validator.Option{validator.WithLogger(log)}
	if validateFlags.keepGoing || cfg.Validation.ContinueOnFailure {
		opts = append(opts, validator.WithContinueOnFailure())
	}
	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector(&cfg.Metrics, prometheus.NewRegistry())
		opts = append(opts, validator.WithRecorder(collector))
	}
	return validator.NewCheckRunner(net, validator.NewDefaultRegistry(), opts...)
}

// buildOptions merges selection filters: explicit flags take precedence
// over the configuration file.
func buildOptions(cfg *config.Config) validator.Options {
	opts := validator.Options{
		Include: cfg.Validation.Include,
		Exclude: cfg.Validation.Exclude,
	}
	for _, c := range cfg.Validation.Categories {
		opts.Categories = append(opts.Categories, validator.Category(c))
	}

	if validateFlags.categories != nil {
		opts.Categories = nil
		for _, c := range validateFlags.categories {
			opts.Categories = append(opts.Categories, validator.Category(c))
		}
	}
	if validateFlags.include != nil {
		opts.Include = validateFlags.include
	}
	if validateFlags.exclude != nil {
		opts.Exclude = validateFlags.exclude
	}
	return opts
}

func outputReport(w io.Writer, report *validator.Report, format cli.OutputFormat) error {
	if format == cli.FormatJSON {
		data, err := report.ToJSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		fmt.Fprintln(w, buf.String())
		return nil
	}

	for _, issue := range report.Issues() {
		marker := "⚠"
		if issue.Severity == validator.SeverityError {
			marker = "✗"
		}
		fmt.Fprintf(w, "%s %s: %s [%s]\n", marker, issue.Severity, issue.Message, issue.Validator)
	}
	fmt.Fprintln(w, report.Summary())
	return nil
}
