package preflight

import (
	"path/filepath"
	"strings"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/config"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Target narrows the checks to a specific render invocation.
type Target struct {
	Folder      string // Optional recording folder to inspect
	SRTOutput   string
	OutputVideo string // Empty when no video will be burned
}

// TargetFromConfig builds the default target from the [overlay] section.
func TargetFromConfig(cfg *config.Config) Target {
	target := Target{SRTOutput: cfg.Overlay.SRTOutput}
	if !cfg.Overlay.SRTOnly {
		target.OutputVideo = cfg.Overlay.OutputVideo
	}
	return target
}

// RunAll executes the checks relevant to the given config and target.
func RunAll(cfg *config.Config, target Target) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckCreatableDirectory("Log directory", cfg.Paths.LogDir))
	if cfg.History.Enabled {
		results = append(results, CheckCreatableDirectory("State directory", cfg.Paths.StateDir))
	}
	if strings.TrimSpace(target.SRTOutput) != "" {
		results = append(results, CheckCreatableDirectory("Subtitle output", absDir(target.SRTOutput)))
	}
	burn := strings.TrimSpace(target.OutputVideo) != ""
	if burn {
		results = append(results, CheckCreatableDirectory("Video output", absDir(target.OutputVideo)))
	}
	results = append(results, CheckBinaries(deps.OverlayRequirements(cfg.FFmpegBinary(), cfg.FFprobeBinary(), burn))...)
	if strings.TrimSpace(target.Folder) != "" {
		results = append(results, CheckRecordingFolder(target.Folder))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

func absDir(path string) string {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
