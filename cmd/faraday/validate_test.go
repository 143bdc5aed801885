package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"voltaic-hq/faraday/pkg/cli"
	"voltaic-hq/faraday/pkg/config"
	"voltaic-hq/faraday/pkg/validator"
)

func resetValidateFlags() {
	validateFlags.file = ""
	validateFlags.categories = nil
	validateFlags.include = nil
	validateFlags.exclude = nil
	validateFlags.format = "text"
	validateFlags.keepGoing = false
}

func TestRunValidateValidNetwork(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/valid-network.json"

	if err := runValidate(nil, nil); err != nil {
		t.Errorf("runValidate() with valid network returned error: %v", err)
	}
}

func TestRunValidateInvalidNetwork(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/invalid-network.json"

	err := runValidate(nil, nil)
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		t.Errorf("runValidate() with dangling reference should fail with CommandError, got %v", err)
	}
}

func TestRunValidateJSONFormat(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/valid-network.json"
	validateFlags.format = "json"

	if err := runValidate(nil, nil); err != nil {
		t.Errorf("runValidate() with JSON format returned error: %v", err)
	}
}

func TestRunValidateExcludeSkipsFailingCheck(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/invalid-network.json"
	validateFlags.exclude = []string{"cable_node_reference"}

	// The only dangling reference is a cable endpoint, so excluding the
	// cable check makes the run pass.
	if err := runValidate(nil, nil); err != nil {
		t.Errorf("runValidate() with exclusion returned error: %v", err)
	}
}

func TestRunValidateUnknownValidator(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/valid-network.json"
	validateFlags.include = []string{"does_not_exist"}

	err := runValidate(nil, nil)
	var unknown *validator.UnknownValidatorError
	if !errors.As(err, &unknown) {
		t.Errorf("runValidate() with unknown validator = %v, want UnknownValidatorError", err)
	}
}

func TestRunValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "no file flag", file: ""},
		{name: "nonexistent file", file: "testdata/nonexistent.json"},
		{name: "malformed document", file: "testdata/malformed.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetValidateFlags()
			validateFlags.file = tt.file
			if err := runValidate(nil, nil); err == nil {
				t.Error("runValidate() should return an error")
			}
		})
	}
}

// TestRunValidateExitStatuses verifies a caller can tell "the network is
// invalid" (status 1) from "the engine failed" (status 2) at the process
// boundary.
func TestRunValidateExitStatuses(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/invalid-network.json"

	err := runValidate(nil, nil)
	if err == nil {
		t.Fatal("runValidate() with dangling reference should fail")
	}
	if got := exitCode(err); got != 1 {
		t.Errorf("invalid network exit code = %d, want 1", got)
	}

	resetValidateFlags()
	validateFlags.file = "testdata/valid-network.json"
	validateFlags.include = []string{"does_not_exist"}

	err = runValidate(nil, nil)
	if err == nil {
		t.Fatal("runValidate() with unknown validator should fail")
	}
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		t.Errorf("engine failure should not be wrapped in CommandError, got %v", err)
	}
	if got := exitCode(err); got != 2 {
		t.Errorf("engine failure exit code = %d, want 2", got)
	}
}

func TestOutputReportTextMarkers(t *testing.T) {
	report := validator.NewReport("", []validator.Issue{
		{Severity: validator.SeverityError, Validator: "cable_node_reference", Message: "dangling endpoint"},
		{Severity: validator.SeverityWarning, Validator: "isolated_node", Message: "unconnected node"},
	})

	var buf bytes.Buffer
	if err := outputReport(&buf, report, cli.FormatText); err != nil {
		t.Fatalf("outputReport() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	// Single-character markers keep the columns aligned.
	if !strings.HasPrefix(lines[0], "✗ error: ") {
		t.Errorf("error line = %q, want %q prefix", lines[0], "✗ error: ")
	}
	if !strings.HasPrefix(lines[1], "⚠ warning: ") {
		t.Errorf("warning line = %q, want %q prefix", lines[1], "⚠ warning: ")
	}
	if lines[2] != "Found 2 issues: error: 1, warning: 1" {
		t.Errorf("summary line = %q", lines[2])
	}
}

func TestRunValidateBadFormat(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = "testdata/valid-network.json"
	validateFlags.format = "yaml"

	if err := runValidate(nil, nil); err == nil {
		t.Error("runValidate() should reject unknown output formats")
	}
}

func TestBuildOptions_FlagsOverrideConfig(t *testing.T) {
	resetValidateFlags()
	cfg := config.Default()
	cfg.Validation.Categories = []string{"core"}
	cfg.Validation.Exclude = []string{"link_node_reference"}

	// No flags: config values apply.
	opts := buildOptions(cfg)
	if len(opts.Categories) != 1 || opts.Categories[0] != validator.CategoryCore {
		t.Errorf("Categories = %v, want [core]", opts.Categories)
	}
	if len(opts.Exclude) != 1 || opts.Exclude[0] != "link_node_reference" {
		t.Errorf("Exclude = %v", opts.Exclude)
	}

	// Flags replace the corresponding config values.
	validateFlags.categories = []string{"extended"}
	validateFlags.exclude = []string{"cable_node_reference"}
	opts = buildOptions(cfg)
	if len(opts.Categories) != 1 || opts.Categories[0] != validator.CategoryExtended {
		t.Errorf("Categories = %v, want [extended]", opts.Categories)
	}
	if len(opts.Exclude) != 1 || opts.Exclude[0] != "cable_node_reference" {
		t.Errorf("Exclude = %v", opts.Exclude)
	}
}
