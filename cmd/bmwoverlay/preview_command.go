package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/discovery"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/subtitles"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/telemetry"
)

type previewCaption struct {
	Index int      `json:"index"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Lines []string `json:"lines"`
}

type previewOutput struct {
	Source   string           `json:"source"`
	Mode     string           `json:"timestamp_mode"`
	Total    int              `json:"total"`
	Captions []previewCaption `json:"captions"`
}

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var speedUnit string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "preview <folder|file.json>",
		Short: "Show the captions a telemetry file produces without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("speed-unit") {
				speedUnit = cfg.Overlay.SpeedUnit
			}

			source, err := previewSource(args[0])
			if err != nil {
				return err
			}
			records, err := telemetry.LoadFile(source)
			if err != nil {
				return err
			}
			entries, mode, err := telemetry.SequenceWithMode(records)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			captions := subtitles.BuildCaptions(entries, speedUnit)

			shown := captions
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}

			if jsonOutput {
				payload := previewOutput{Source: source, Total: len(captions), Captions: make([]previewCaption, 0, len(shown))}
				if len(captions) > 0 {
					payload.Mode = mode.String()
				}
				for _, c := range shown {
					payload.Captions = append(payload.Captions, previewCaption{
						Index: c.Index,
						Start: subtitles.FormatTimestamp(c.Start),
						End:   subtitles.FormatTimestamp(c.End),
						Lines: c.Lines,
					})
				}
				return writeJSON(cmd.OutOrStdout(), payload)
			}

			out := cmd.OutOrStdout()
			if len(captions) == 0 {
				fmt.Fprintf(out, "%s contains no telemetry records\n", source)
				return nil
			}
			rows := make([][]string, 0, len(shown))
			for _, c := range shown {
				rows = append(rows, []string{
					strconv.Itoa(c.Index),
					subtitles.FormatTimestamp(c.Start),
					subtitles.FormatTimestamp(c.End),
					c.Text(),
				})
			}
			fmt.Fprintln(out, renderTable(captionLayout, rows))
			fmt.Fprintf(out, "Showing %d of %d captions (%s timestamps) from %s\n", len(shown), len(captions), mode, source)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum captions to show (0 for all)")
	cmd.Flags().StringVar(&speedUnit, "speed-unit", "mph", "Unit label used when rendering speeds")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// previewSource accepts a recording folder or a telemetry file directly.
func previewSource(arg string) (string, error) {
	path, err := resolvePath(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &discovery.NotFoundError{Kind: discovery.KindFolder, Dir: path}
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return discovery.FindMetadata(path)
	}
	return path, nil
}
