package subtitles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/logging"
)

// ErrExternalEncoderFailure marks failures of the external video encoder.
var ErrExternalEncoderFailure = errors.New("external encoder failure")

// EncoderError reports a failed encoder invocation.
type EncoderError struct {
	Command  string
	ExitCode int // -1 when the process could not be started
	Output   string
	Err      error
}

func (e *EncoderError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s could not be started: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
}

func (e *EncoderError) Unwrap() error { return e.Err }

func (e *EncoderError) Is(target error) bool { return target == ErrExternalEncoderFailure }

// commandRunner executes an external command and returns its combined output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// BurnRequest describes the inputs for burning a subtitle track into a video.
type BurnRequest struct {
	VideoPath    string // Source video (.mp4 or .ts)
	SubtitlePath string // SRT track to render onto the frames
	OutputPath   string // Destination video
}

// BurnResult reports the outcome of a burn.
type BurnResult struct {
	OutputPath string
}

// Burner renders SRT captions onto video frames using ffmpeg's subtitles filter.
type Burner struct {
	logger *slog.Logger
	binary string
	run    commandRunner
}

// NewBurner constructs a subtitle burner. An empty binary selects "ffmpeg" from PATH.
func NewBurner(binary string, logger *slog.Logger) *Burner {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = ffmpegCommand
	}
	return &Burner{
		logger: logging.NewComponentLogger(logger, "burner"),
		binary: binary,
		run:    defaultCommandRunner,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (b *Burner) WithCommandRunner(r commandRunner) {
	if b != nil && r != nil {
		b.run = r
	}
}

// Burn encodes a new video with the subtitle track drawn onto it. Audio is
// copied unchanged. ffmpeg writes to a hidden file next to the destination,
// which is renamed into place only after a successful exit.
func (b *Burner) Burn(ctx context.Context, req BurnRequest) (BurnResult, error) {
	if b == nil {
		return BurnResult{}, fmt.Errorf("burner not initialized")
	}
	if strings.TrimSpace(req.VideoPath) == "" {
		return BurnResult{}, fmt.Errorf("video path is required")
	}
	if strings.TrimSpace(req.SubtitlePath) == "" {
		return BurnResult{}, fmt.Errorf("subtitle path is required")
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return BurnResult{}, fmt.Errorf("output path is required")
	}
	if _, err := os.Stat(req.VideoPath); err != nil {
		return BurnResult{}, fmt.Errorf("source video not found: %w", err)
	}
	if _, err := os.Stat(req.SubtitlePath); err != nil {
		return BurnResult{}, fmt.Errorf("subtitle file not found %q: %w", req.SubtitlePath, err)
	}

	dir := filepath.Dir(req.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return BurnResult{}, fmt.Errorf("create output directory: %w", err)
	}
	// Keep the extension so ffmpeg still picks the container from the name.
	tmpPath := filepath.Join(dir, ".burn-"+filepath.Base(req.OutputPath))

	args := buildFFmpegArgs(req, tmpPath)
	b.logger.Debug("executing ffmpeg",
		logging.String("video_path", req.VideoPath),
		logging.String("subtitle_path", req.SubtitlePath),
		logging.String("output_path", req.OutputPath),
	)

	output, err := b.run(ctx, b.binary, args...)
	if err != nil {
		_ = os.Remove(tmpPath)
		encErr := &EncoderError{Command: b.binary, ExitCode: -1, Output: strings.TrimSpace(string(output)), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			encErr.ExitCode = exitErr.ExitCode()
		}
		logging.ErrorWithContext(b.logger, "ffmpeg failed", "subtitle_burn_failed",
			logging.Error(err),
			logging.Int("exit_code", encErr.ExitCode),
			logging.String("output_tail", tail(encErr.Output, 20)),
			logging.String(logging.FieldErrorHint, "run the ffmpeg command manually to inspect the encoder output"),
		)
		return BurnResult{}, encErr
	}

	if _, err := os.Stat(tmpPath); err != nil {
		return BurnResult{}, fmt.Errorf("ffmpeg did not produce output file: %w", err)
	}
	if err := os.Rename(tmpPath, req.OutputPath); err != nil {
		_ = os.Remove(tmpPath)
		return BurnResult{}, fmt.Errorf("move rendered video into place: %w", err)
	}

	b.logger.Info("subtitles burned into video",
		logging.String(logging.FieldEventType, "subtitle_burn_complete"),
		logging.String("output_path", req.OutputPath),
	)
	return BurnResult{OutputPath: req.OutputPath}, nil
}

// buildFFmpegArgs constructs the ffmpeg command arguments.
func buildFFmpegArgs(req BurnRequest, outputPath string) []string {
	return []string{
		"-y",
		"-i", req.VideoPath,
		"-vf", "subtitles=" + escapeFilterValue(req.SubtitlePath),
		"-c:a", "copy",
		outputPath,
	}
}

// escapeFilterValue applies ffmpeg's two escaping levels: the filter option
// value first, then the filtergraph description.
func escapeFilterValue(value string) string {
	optionLevel := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`).Replace(value)
	return strings.NewReplacer(
		`\`, `\\`, `'`, `\'`, `[`, `\[`, `]`, `\]`, `,`, `\,`, `;`, `\;`,
	).Replace(optionLevel)
}

func tail(output string, lines int) string {
	parts := strings.Split(output, "\n")
	if len(parts) <= lines {
		return output
	}
	return strings.Join(parts[len(parts)-lines:], "\n")
}

// defaultCommandRunner executes the encoder and captures its output.
func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
