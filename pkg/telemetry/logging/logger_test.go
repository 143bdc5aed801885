package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("New() should reject an unknown format")
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("validation run completed", "issues", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "validation run completed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["issues"] != float64(3) {
		t.Errorf("issues = %v", entry["issues"])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.With("run_id", "abc").Info("started")
	if !strings.Contains(buf.String(), "run_id=abc") {
		t.Errorf("With field missing: %q", buf.String())
	}
}

func TestLogger_ConsoleOmitsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("hello")
	if strings.Contains(buf.String(), "time=") {
		t.Errorf("console format should omit timestamps: %q", buf.String())
	}
}
