package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/history"
)

type historyRun struct {
	ID            string `json:"id"`
	StartedAt     string `json:"started_at"`
	DurationMs    int64  `json:"duration_ms"`
	Folder        string `json:"folder"`
	SRTPath       string `json:"srt_path,omitempty"`
	OutputVideo   string `json:"output_video,omitempty"`
	TimestampMode string `json:"timestamp_mode,omitempty"`
	EntryCount    int    `json:"entry_count"`
	Outcome       string `json:"outcome"`
	Error         string `json:"error,omitempty"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent render runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path := cfg.HistoryPath()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), []historyRun{})
				}
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				payload := make([]historyRun, 0, len(runs))
				for _, run := range runs {
					payload = append(payload, historyRun{
						ID:            run.ID,
						StartedAt:     run.StartedAt.Format(time.RFC3339),
						DurationMs:    run.Duration().Milliseconds(),
						Folder:        run.Folder,
						SRTPath:       run.SRTPath,
						OutputVideo:   run.OutputVideo,
						TimestampMode: run.TimestampMode,
						EntryCount:    run.EntryCount,
						Outcome:       run.Outcome,
						Error:         run.ErrorMessage,
					})
				}
				return writeJSON(cmd.OutOrStdout(), payload)
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					run.Outcome,
					strconv.Itoa(run.EntryCount),
					run.Duration().Round(time.Millisecond).String(),
					run.Folder,
					historyDetail(run),
				})
			}
			fmt.Fprintln(out, renderTable(historyLayout, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func historyDetail(run history.Run) string {
	switch {
	case run.ErrorMessage != "":
		return run.ErrorMessage
	case run.OutputVideo != "":
		return run.OutputVideo
	default:
		return run.SRTPath
	}
}
