package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/config"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/testsupport"
)

// stubFFmpeg writes a placeholder file to its last argument, which is where
// the burner asks ffmpeg to write the rendered video.
const stubFFmpeg = "for last; do :; done\nprintf rendered > \"$last\"\n"

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, ffmpegScript string) *cliTestEnv {
	t.Helper()

	t.Setenv("BMWOVERLAY_FFMPEG", "")
	t.Setenv("BMWOVERLAY_SPEED_UNIT", "")
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries(ffmpegScript, "ffmpeg"))
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))
	cfg.FFmpeg.FFprobeBinary = filepath.Join(base, "bin", "missing-ffprobe")

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
