package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"supocr/internal/manifest"
	"supocr/internal/subtitles"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect <manifest.toml>",
		Short:       "List the events of a manifest with their wall-clock times",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Read(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if m.Len() == 0 {
				fmt.Fprintln(out, "Manifest has no events")
				return nil
			}

			rows, problems, total := inspectRows(m)
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "End", "Duration", "Image", "Status"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft},
				"", "", "", formatDuration(total), fmt.Sprintf("%d events", m.Len()), fmt.Sprintf("%d problems", problems),
			))
			return nil
		},
	}
}

func inspectRows(m *manifest.Manifest) ([][]string, int, time.Duration) {
	rows := make([][]string, 0, m.Len())
	problems := 0
	var total time.Duration
	for i, event := range m.Events {
		status := "ok"
		switch {
		case event.EndTicks < event.StartTicks:
			status = "ends before start"
		case !fileExists(m.ImagePath(i)):
			status = "image missing"
		}
		if status != "ok" {
			problems++
		}
		total += event.Duration()
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			subtitles.FormatTimestamp(event.Start()),
			subtitles.FormatTimestamp(event.End()),
			formatDuration(event.Duration()),
			event.Image,
			status,
		})
	}
	return rows, problems, total
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
