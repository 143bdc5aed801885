package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voltaic-hq/faraday/pkg/cli"
	"voltaic-hq/faraday/pkg/config"
	"voltaic-hq/faraday/pkg/telemetry/logging"
)

const defaultConfigPath = "config.yaml"

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "faraday",
	Short: "Faraday - electrical network model validation toolkit",
	Long: `Faraday validates the structural and referential integrity of electrical
network models: graphs of buses connected by cables, links, and transformers.

It runs a configurable set of named validators against a loaded network and
reports the findings with severities, for both interactive use and CI.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. A CommandError marks
// an expected command outcome (a network that failed validation) and exits
// with 1; anything else means the engine or the invocation itself failed
// and exits with 2, so scripts can tell the two apart.
func exitCode(err error) int {
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		return 1
	}
	return 2
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file. The default path is allowed to
// be absent; an explicitly named file is not.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if cfgFile == defaultConfigPath {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("config file %q not found", cfgFile)
	}
	return config.Load(cfgFile)
}

// buildLogger creates the application logger from configuration. The
// --verbose flag lowers the level to debug.
func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
	})
}
