package main

import (
	"runtime"
	"testing"
)

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}

	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}

	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}

	if versionCmd.Run == nil {
		t.Error("versionCmd.Run should not be nil")
	}
}

func TestVersionDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if GitCommit == "" || BuildDate == "" {
		t.Error("GitCommit and BuildDate should have default values")
	}
}

func TestRuntimeInfo(t *testing.T) {
	// The version command prints runtime information; sanity-check it is
	// available.
	if runtime.Version() == "" || runtime.GOOS == "" || runtime.GOARCH == "" {
		t.Error("runtime information should not be empty")
	}
}
