package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/config"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/history"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/logging"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/media/ffprobe"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/overlay"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/subtitles"
)

type renderOptions struct {
	speedUnit   string
	srtOutput   string
	outputVideo string
	srtOnly     bool
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <folder>",
		Short: "Generate subtitle overlays from telemetry JSON and burn them into the video",
		Long: "Reads the telemetry JSON and the .mp4 or .ts video from a recording folder,\n" +
			"writes an SRT caption track, and renders a copy of the video with the\n" +
			"captions drawn on. Use --srt-only to skip ffmpeg.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			applyRenderFlags(cmd, cfg, &opts)
			req, err := buildRenderRequest(args[0], opts)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger(cmd)
			if err != nil {
				return err
			}

			runnerOpts := []overlay.Option{
				overlay.WithBurner(subtitles.NewBurner(cfg.FFmpegBinary(), logger)),
				overlay.WithInspector(ffprobe.NewInspector(cfg.FFprobeBinary())),
			}
			if cfg.History.Enabled {
				store, err := history.Open(cfg.HistoryPath())
				if err != nil {
					logging.WarnWithContext(logger, "run history unavailable", "history_open_failed",
						logging.Error(err),
						logging.String(logging.FieldImpact, "this run will not be journaled"),
						logging.String(logging.FieldErrorHint, "check paths.state_dir or set history.enabled = false"),
					)
				} else {
					defer store.Close()
					runnerOpts = append(runnerOpts, overlay.WithJournal(store))
				}
			}

			result, err := overlay.NewRunner(logger, runnerOpts...).Process(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SRT written to: %s\n", result.SubtitlePath)
			if result.OutputVideo == "" {
				fmt.Fprintln(out, "No video rendering requested (use --output-video to enable)")
			} else {
				fmt.Fprintf(out, "Overlay video written to: %s\n", result.OutputVideo)
			}
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&opts.speedUnit, "speed-unit", defaults.Overlay.SpeedUnit, "Unit label used when rendering speeds")
	cmd.Flags().StringVar(&opts.srtOutput, "srt-output", defaults.Overlay.SRTOutput, "Where to write the generated SRT file")
	cmd.Flags().StringVar(&opts.outputVideo, "output-video", defaults.Overlay.OutputVideo, "Where to write the video with embedded subtitles")
	cmd.Flags().BoolVar(&opts.srtOnly, "srt-only", false, "Only write the SRT file and skip ffmpeg video rendering")
	return cmd
}

// applyRenderFlags fills options the user did not pass from the config file.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, opts *renderOptions) {
	flags := cmd.Flags()
	if !flags.Changed("speed-unit") {
		opts.speedUnit = cfg.Overlay.SpeedUnit
	}
	if !flags.Changed("srt-output") {
		opts.srtOutput = cfg.Overlay.SRTOutput
	}
	if !flags.Changed("output-video") {
		opts.outputVideo = cfg.Overlay.OutputVideo
	}
	if !flags.Changed("srt-only") {
		opts.srtOnly = cfg.Overlay.SRTOnly
	}
}

func buildRenderRequest(folderArg string, opts renderOptions) (overlay.Request, error) {
	folder, err := resolvePath(folderArg)
	if err != nil {
		return overlay.Request{}, fmt.Errorf("resolve folder: %w", err)
	}
	if folder == "" {
		return overlay.Request{}, fmt.Errorf("recording folder is required")
	}
	srtPath, err := resolvePath(opts.srtOutput)
	if err != nil {
		return overlay.Request{}, fmt.Errorf("resolve srt output: %w", err)
	}
	if srtPath == "" {
		return overlay.Request{}, fmt.Errorf("--srt-output must not be empty")
	}

	req := overlay.Request{
		Folder:       folder,
		SubtitlePath: srtPath,
		SpeedUnit:    opts.speedUnit,
	}
	if opts.srtOnly || strings.TrimSpace(opts.outputVideo) == "" {
		return req, nil
	}
	videoPath, err := resolvePath(opts.outputVideo)
	if err != nil {
		return overlay.Request{}, fmt.Errorf("resolve output video: %w", err)
	}
	if videoPath == srtPath {
		return overlay.Request{}, fmt.Errorf("--output-video and --srt-output must differ")
	}
	req.OutputVideo = videoPath
	return req, nil
}
