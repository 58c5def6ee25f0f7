package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"supocr/internal/logging"
	"supocr/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var runLog string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the log of the most recent conversion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(runLog)
			if path == "" {
				if cfg.Logging.Dir == "" {
					return fmt.Errorf("logging.log_dir is not set; no run logs are written")
				}
				path, err = logs.Latest(cfg.Logging.Dir, logging.LogFilePattern)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			result, err := logs.Tail(path, lines)
			if err != nil {
				return err
			}
			for _, line := range result.Lines {
				fmt.Fprintln(out, line)
			}
			if !follow {
				return nil
			}
			return logs.Follow(cmd.Context(), path, result.Offset, 250*time.Millisecond, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing lines as they are appended")
	cmd.Flags().StringVar(&runLog, "file", "", "Read this log file instead of the most recent run log")
	return cmd
}
