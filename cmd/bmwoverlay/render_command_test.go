package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/testsupport"
)

const numericPayload = `[{"timestamp": 1, "speed": 12}, {"timestamp": 0, "speed": 10, "latitude": 48.1}]`

func TestRenderWritesSubtitlesAndVideo(t *testing.T) {
	env := setupCLITestEnv(t, stubFFmpeg)
	folder := testsupport.RecordingFolder(t, "clip.mp4", numericPayload)

	out, _, err := runCLI(t, []string{"render", folder}, env.configPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	requireContains(t, out, "SRT written to: "+env.cfg.Overlay.SRTOutput)
	requireContains(t, out, "Overlay video written to: "+env.cfg.Overlay.OutputVideo)

	srt, err := os.ReadFile(env.cfg.Overlay.SRTOutput)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	if !strings.HasPrefix(string(srt), "1\n00:00:00,000 --> 00:00:01,000\nTime: 0.000s\nSpeed: 10.0 mph\nLat/Lon: 48.1, —\n") {
		t.Fatalf("unexpected srt: %q", srt)
	}
	video, err := os.ReadFile(env.cfg.Overlay.OutputVideo)
	if err != nil || string(video) != "rendered" {
		t.Fatalf("expected rendered video, got %q (%v)", video, err)
	}

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "ok")
	requireContains(t, out, folder)
}

func TestRenderSRTOnly(t *testing.T) {
	env := setupCLITestEnv(t, stubFFmpeg)
	folder := testsupport.RecordingFolder(t, "clip.ts", numericPayload)

	out, _, err := runCLI(t, []string{"render", folder, "--srt-only"}, env.configPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	requireContains(t, out, "No video rendering requested (use --output-video to enable)")
	if _, err := os.Stat(env.cfg.Overlay.OutputVideo); !os.IsNotExist(err) {
		t.Fatalf("expected no video with --srt-only, stat err = %v", err)
	}
}

func TestRenderFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t, stubFFmpeg)
	folder := testsupport.RecordingFolder(t, "clip.mp4", numericPayload)
	work := t.TempDir()
	t.Chdir(work)

	out, _, err := runCLI(t, []string{
		"render", folder,
		"--srt-output", "custom/track.srt",
		"--output-video", "",
		"--speed-unit", "km/h",
	}, env.configPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	target := filepath.Join(work, "custom", "track.srt")
	requireContains(t, out, "SRT written to: "+target)
	requireContains(t, out, "No video rendering requested")

	srt, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	requireContains(t, string(srt), "Speed: 12.0 km/h")
	if _, err := os.Stat(env.cfg.Overlay.SRTOutput); !os.IsNotExist(err) {
		t.Fatal("configured srt output should not be written when overridden")
	}
}

func TestRenderExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		payload string
		video   string
		missing bool
		code    int
		message string
	}{
		{name: "missing folder", script: stubFFmpeg, missing: true, code: 2, message: "provided folder does not exist"},
		{name: "missing video", script: stubFFmpeg, payload: numericPayload, video: "notes.txt", code: 2, message: "no .mp4 or .ts file found"},
		{name: "unsupported timestamp", script: stubFFmpeg, payload: `[{"timestamp": "not-a-time"}]`, video: "clip.mp4", code: 3, message: "not-a-time"},
		{name: "missing timestamp", script: stubFFmpeg, payload: `[{"speed": 3}]`, video: "clip.mp4", code: 3, message: "'timestamp'"},
		{name: "encoder failure", script: "echo boom >&2\nexit 7\n", payload: numericPayload, video: "clip.mp4", code: 4, message: "exit code 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupCLITestEnv(t, tt.script)
			folder := filepath.Join(env.baseDir, "absent")
			if !tt.missing {
				folder = testsupport.RecordingFolder(t, tt.video, tt.payload)
			}

			_, _, err := runCLI(t, []string{"render", folder}, env.configPath)
			if err == nil {
				t.Fatal("expected render to fail")
			}
			if got := exitCode(err); got != tt.code {
				t.Fatalf("exitCode(%v) = %d, want %d", err, got, tt.code)
			}
			requireContains(t, err.Error(), tt.message)
		})
	}
}

func TestRenderRequiresFolderArgument(t *testing.T) {
	env := setupCLITestEnv(t, stubFFmpeg)
	if _, _, err := runCLI(t, []string{"render"}, env.configPath); err == nil {
		t.Fatal("expected error without folder argument")
	}
}
