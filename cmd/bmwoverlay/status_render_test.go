package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/preflight"
)

func TestRenderCheckLine(t *testing.T) {
	got := renderCheckLine("FFmpeg", stateOK, "/usr/bin/ffmpeg", false)
	want := "  FFmpeg:              [OK] /usr/bin/ffmpeg"
	if got != want {
		t.Fatalf("renderCheckLine = %q, want %q", got, want)
	}
	colored := renderCheckLine("FFmpeg", stateFail, "", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, "[FAIL]"+ansiReset) {
		t.Fatalf("unexpected colored line %q", colored)
	}
}

func TestStateFor(t *testing.T) {
	tests := []struct {
		result preflight.Result
		want   checkState
	}{
		{preflight.Result{Name: "FFmpeg", Passed: true, Detail: "/usr/bin/ffmpeg"}, stateOK},
		{preflight.Result{Name: "FFprobe", Passed: true, Detail: "not found (optional)"}, stateWarn},
		{preflight.Result{Name: "Log directory", Detail: "/x (error: is not a directory)"}, stateFail},
	}
	for _, tt := range tests {
		if got := stateFor(tt.result); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.result.Name, got.tag, tt.want.tag)
		}
	}
}

func TestRenderCheckSummary(t *testing.T) {
	results := []preflight.Result{
		{Name: "Log directory", Passed: true, Detail: "/logs (read/write ok)"},
		{Name: "FFprobe", Passed: true, Detail: "not found (optional)"},
		{Name: "FFmpeg", Detail: "not found"},
	}
	if got := renderCheckSummary(results, false); got != "1 ok, 1 warning, 1 failed" {
		t.Fatalf("summary = %q", got)
	}
	if got := renderCheckSummary(results[:1], true); got != ansiGreen+"1 ok, 0 warnings, 0 failed"+ansiReset {
		t.Fatalf("colored summary = %q", got)
	}
}

func TestShouldColorizeBuffer(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}
