package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var srtOnly bool

	cmd := &cobra.Command{
		Use:   "doctor [folder]",
		Short: "Check binaries, output directories, and optionally a recording folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := preflight.TargetFromConfig(cfg)
			if srtOnly {
				target.OutputVideo = ""
			}
			if len(args) == 1 {
				folder, err := resolvePath(args[0])
				if err != nil {
					return fmt.Errorf("resolve folder: %w", err)
				}
				target.Folder = folder
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg, target)

			for _, line := range renderDoctorHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range results {
				fmt.Fprintln(out, renderCheckLine(result.Name, stateFor(result), result.Detail, colorize))
			}
			if target.Folder == "" {
				fmt.Fprintln(out, renderCheckLine("Recording folder", stateSkip, "not checked (pass a folder to inspect it)", colorize))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderCheckSummary(results, colorize))
			if !preflight.AllPassed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&srtOnly, "srt-only", false, "Skip checks that only matter when burning video")
	return cmd
}
