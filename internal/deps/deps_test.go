package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present, Package: "present-tools"},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Package != "present-tools" {
		t.Fatalf("expected package to be carried over, got %q", results[0].Package)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestCheckBinariesAbsolutePathNotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flac")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	results := CheckBinaries([]Requirement{{Name: "flac", Command: path}})
	if results[0].Available {
		t.Fatalf("expected non-executable file to be unavailable")
	}
	if results[0].Detail == "" {
		t.Fatalf("expected detail for non-executable file")
	}
}

func TestCheckBinariesUnconfigured(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "blank", Command: "  "}})
	if results[0].Available || results[0].Detail != "command not configured" {
		t.Fatalf("unexpected status %#v", results[0])
	}
}

func TestMissingIgnoresOptional(t *testing.T) {
	statuses := []Status{
		{Name: "decoder", Available: false},
		{Name: "analyzer", Available: false, Optional: true},
		{Name: "encoder", Available: true},
	}
	missing := Missing(statuses)
	if len(missing) != 1 || missing[0].Name != "decoder" {
		t.Fatalf("unexpected missing set %#v", missing)
	}
}
