package overlay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/discovery"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/fileutil"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/history"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/logging"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/media/ffprobe"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/subtitles"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/telemetry"
)

// numericOffsetWarnSeconds flags numeric timelines that look like epoch
// seconds: captions would start a day or more into the video.
const numericOffsetWarnSeconds = 24 * 60 * 60

// Request describes one render of a recording folder.
type Request struct {
	Folder       string
	SubtitlePath string
	OutputVideo  string // Empty skips the ffmpeg burn
	SpeedUnit    string
}

// Result reports what a successful run produced.
type Result struct {
	RunID        string
	Inputs       discovery.Inputs
	SubtitlePath string
	OutputVideo  string // Empty when no video was rendered
	EntryCount   int
	Mode         telemetry.Kind
	Issues       []string // SRT validation warnings
}

// Burner renders a subtitle track into a video.
type Burner interface {
	Burn(ctx context.Context, req subtitles.BurnRequest) (subtitles.BurnResult, error)
}

// MediaInspector reads media metadata.
type MediaInspector interface {
	Inspect(ctx context.Context, path string) (ffprobe.Result, error)
}

// Journal stores finished runs.
type Journal interface {
	Record(ctx context.Context, run history.Run) (history.Run, error)
}

// Runner executes the discover → normalize → caption → write → burn pipeline.
type Runner struct {
	logger    *slog.Logger
	burner    Burner
	inspector MediaInspector
	journal   Journal
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithBurner sets the encoder used when a request names an output video.
func WithBurner(b Burner) Option { return func(r *Runner) { r.burner = b } }

// WithInspector enables the caption coverage check against the video duration.
func WithInspector(p MediaInspector) Option { return func(r *Runner) { r.inspector = p } }

// WithJournal records each run.
func WithJournal(j Journal) Option { return func(r *Runner) { r.journal = j } }

// NewRunner constructs a Runner.
func NewRunner(logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logging.NewComponentLogger(logger, "overlay"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Process renders the subtitle track for req.Folder and, when requested,
// burns it into a new video. Nothing is written unless the telemetry
// normalizes cleanly.
func (r *Runner) Process(ctx context.Context, req Request) (result Result, err error) {
	if r == nil {
		return Result{}, errors.New("overlay runner not initialized")
	}
	if strings.TrimSpace(req.Folder) == "" {
		return Result{}, errors.New("recording folder is required")
	}
	if strings.TrimSpace(req.SubtitlePath) == "" {
		return Result{}, errors.New("subtitle output path is required")
	}

	result.RunID = history.NewRunID()
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithContext(ctx, r.logger)
	started := r.now()
	defer func() {
		r.record(ctx, logger, started, req, result, err)
	}()

	logger.Info("render started",
		logging.String(logging.FieldEventType, "render_started"),
		logging.String("folder", req.Folder),
	)

	inputs, err := discovery.Find(req.Folder)
	if err != nil {
		return result, err
	}
	result.Inputs = inputs
	logger.Debug("inputs discovered",
		logging.String("video_path", inputs.Video),
		logging.String("metadata_path", inputs.Metadata),
	)

	records, err := telemetry.LoadFile(inputs.Metadata)
	if err != nil {
		return result, err
	}
	entries, mode, err := telemetry.SequenceWithMode(records)
	if err != nil {
		return result, fmt.Errorf("%s: %w", inputs.Metadata, err)
	}
	if len(entries) == 0 {
		return result, &telemetry.MalformedPayloadError{Reason: "telemetry contains no records"}
	}
	result.EntryCount = len(entries)
	result.Mode = mode
	if mode == telemetry.KindNumeric && entries[0].Offset >= numericOffsetWarnSeconds {
		logging.WarnWithContext(logger, "numeric timestamps are not zero-based", "numeric_offset_large",
			logging.Float64("first_offset_seconds", entries[0].Offset),
			logging.String(logging.FieldImpact, "captions start long after the beginning of the video"),
			logging.String(logging.FieldErrorHint, "export telemetry with elapsed seconds or ISO-8601 timestamps"),
		)
	}

	captions := subtitles.BuildCaptions(entries, req.SpeedUnit)

	lock := fileutil.NewOutputLock(req.SubtitlePath)
	if err := lock.Acquire(); err != nil {
		return result, err
	}
	defer func() { _ = lock.Release() }()

	if err := subtitles.WriteSRT(req.SubtitlePath, captions); err != nil {
		return result, err
	}
	result.SubtitlePath = req.SubtitlePath
	logger.Info("subtitle track written",
		logging.String(logging.FieldEventType, "srt_written"),
		logging.String("srt_path", req.SubtitlePath),
		logging.Int("caption_count", len(captions)),
		logging.String("timestamp_mode", mode.String()),
	)

	result.Issues = r.validate(ctx, logger, inputs.Video, req.SubtitlePath)

	if strings.TrimSpace(req.OutputVideo) == "" {
		return result, nil
	}
	if r.burner == nil {
		return result, errors.New("video rendering requested but no encoder is configured")
	}
	burned, err := r.burner.Burn(ctx, subtitles.BurnRequest{
		VideoPath:    inputs.Video,
		SubtitlePath: req.SubtitlePath,
		OutputPath:   req.OutputVideo,
	})
	if err != nil {
		return result, err
	}
	result.OutputVideo = burned.OutputPath
	return result, nil
}

// validate checks the written track against the video duration. Problems are
// reported as warnings only.
func (r *Runner) validate(ctx context.Context, logger *slog.Logger, videoPath, srtPath string) []string {
	var videoSeconds float64
	if r.inspector != nil {
		info, err := r.inspector.Inspect(ctx, videoPath)
		if err != nil {
			logger.Debug("video duration unavailable", logging.Error(err))
		} else {
			videoSeconds = info.DurationSeconds()
		}
	}
	issues := subtitles.ValidateSRTContent(srtPath, videoSeconds)
	for _, issue := range issues {
		logging.WarnWithContext(logger, "subtitle track validation issue", "srt_validation_issue",
			logging.String("issue", issue),
			logging.String("srt_path", srtPath),
			logging.String(logging.FieldImpact, "captions may not line up with the video"),
			logging.String(logging.FieldErrorHint, "check the telemetry timestamps against the recording"),
		)
	}
	return issues
}

func (r *Runner) record(ctx context.Context, logger *slog.Logger, started time.Time, req Request, result Result, runErr error) {
	outcome := Classify(runErr)
	if runErr != nil {
		logging.ErrorWithContext(logger, "render failed", "render_failed",
			logging.Error(runErr),
			logging.String("outcome", outcome.String()),
		)
	} else {
		logger.Info("render finished",
			logging.String(logging.FieldEventType, "render_finished"),
			logging.Int("entry_count", result.EntryCount),
			logging.Duration("elapsed", r.now().Sub(started)),
		)
	}
	if r.journal == nil {
		return
	}

	run := history.Run{
		ID:           result.RunID,
		StartedAt:    started,
		FinishedAt:   r.now(),
		Folder:       req.Folder,
		VideoPath:    result.Inputs.Video,
		MetadataPath: result.Inputs.Metadata,
		SRTPath:      result.SubtitlePath,
		OutputVideo:  result.OutputVideo,
		EntryCount:   result.EntryCount,
		Outcome:      outcome.String(),
	}
	if result.Mode != 0 {
		run.TimestampMode = result.Mode.String()
	}
	if runErr != nil {
		run.ErrorMessage = runErr.Error()
	}
	if _, err := r.journal.Record(context.WithoutCancel(ctx), run); err != nil {
		logging.WarnWithContext(logger, "run history not recorded", "history_write_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "this run will not appear in 'bmwoverlay history'"),
		)
	}
}
