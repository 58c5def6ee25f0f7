package subtitles

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"supocr/internal/fileutil"
)

// FormatTimestamp renders d as HH:MM:SS,mmm rounded to the nearest millisecond.
// Hours widen past two digits rather than wrapping.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMillis := d.Round(time.Millisecond).Milliseconds()
	hours := totalMillis / 3_600_000
	minutes := (totalMillis / 60_000) % 60
	seconds := (totalMillis / 1000) % 60
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// Render writes every cue of doc to w as SubRip blocks.
func Render(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	for _, cue := range doc.Cues() {
		fmt.Fprintf(&buf, "%d\n%s --> %s\n", cue.Index, FormatTimestamp(cue.Start), FormatTimestamp(cue.End))
		lines := textLines(cue.Text)
		if len(lines) == 0 {
			buf.WriteByte('\n')
		}
		for _, line := range lines {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// textLines splits cue text into lines. Blank lines would terminate the
// block early, so they are collapsed; other lines are kept verbatim.
func textLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimPrefix(text, "\ufeff")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Write renders doc to path, replacing any existing file. The document is
// rendered to a sibling temp file first so a failed write never leaves a
// truncated destination behind.
func Write(doc *Document, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("write srt: empty destination path")
	}
	if err := fileutil.WriteAtomic(path, func(w io.Writer) error {
		return Render(w, doc)
	}); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
