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
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  ", Optional: true},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available || results[0].Path != present {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available || results[1].Satisfied() {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", results[2].Detail)
	}
	if !results[2].Satisfied() {
		t.Fatalf("optional dependency should be satisfied when missing")
	}
}

func TestOverlayRequirements(t *testing.T) {
	burn := OverlayRequirements("ffmpeg", "ffprobe", true)
	if len(burn) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(burn))
	}
	if burn[0].Optional {
		t.Fatal("ffmpeg must be required when burning")
	}
	if !burn[1].Optional {
		t.Fatal("ffprobe must stay optional")
	}

	srtOnly := OverlayRequirements("/opt/ffmpeg", "ffprobe", false)
	if !srtOnly[0].Optional {
		t.Fatal("ffmpeg should be optional for subtitle-only runs")
	}
	if srtOnly[0].Command != "/opt/ffmpeg" {
		t.Fatalf("unexpected command %q", srtOnly[0].Command)
	}
}
