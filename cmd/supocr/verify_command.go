package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"supocr/internal/services"
	"supocr/internal/subtitles"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "verify <file.srt>",
		Short:       "Check a SubRip file for structural problems",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(args[0])
			out := cmd.OutOrStdout()

			issues := subtitles.ValidateSRTContent(path)
			if stats, err := subtitles.ReadStats(path); err == nil {
				fmt.Fprintf(out, "Cues: %d\n", stats.Cues)
				if stats.Cues > 0 {
					fmt.Fprintf(out, "Span: %s --> %s\n",
						subtitles.FormatTimestamp(stats.First), subtitles.FormatTimestamp(stats.Last))
				}
			}
			if len(issues) == 0 {
				fmt.Fprintln(out, "SRT valid")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(out, "  - %s\n", issue)
			}
			return services.Wrap(services.ErrValidation, "verify", "", fmt.Sprintf("%s has %d issue(s)", path, len(issues)), nil)
		},
	}
}
