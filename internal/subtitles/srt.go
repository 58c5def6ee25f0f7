package subtitles

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Stats summarizes a SubRip file on disk.
type Stats struct {
	Cues  int
	First time.Duration
	Last  time.Duration
}

// ReadStats counts the cues of the SRT file at path and reports the first
// start and last end timestamps.
func ReadStats(path string) (Stats, error) {
	cues, err := countSRTCues(path)
	if err != nil {
		return Stats{}, err
	}
	first, last, err := subtitleBounds(path)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Cues:  cues,
		First: secondsToDuration(first),
		Last:  secondsToDuration(last),
	}, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}

func countSRTCues(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read srt: %w", err)
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "-->") {
			count++
		}
	}
	return count, nil
}

func subtitleBounds(path string) (float64, float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read srt: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	first := math.Inf(1)
	var last float64
	found := false
	for _, line := range lines {
		if !strings.Contains(line, "-->") {
			continue
		}
		parts := strings.Split(line, "-->")
		if len(parts) != 2 {
			continue
		}
		if startSeconds, err := parseSRTTimestamp(parts[0]); err == nil {
			if startSeconds < first {
				first = startSeconds
			}
			found = true
		}
		if endSeconds, err := parseSRTTimestamp(parts[1]); err == nil {
			if endSeconds > last {
				last = endSeconds
			}
		}
	}
	if !found {
		return 0, last, nil
	}
	return first, last, nil
}

func parseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// SRT uses a comma before the milliseconds; accept a period too.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// ValidateSRTContent checks an SRT file for format issues.
// Returns a list of issues found; empty slice means validation passed.
func ValidateSRTContent(path string) []string {
	var issues []string

	data, err := os.ReadFile(path)
	if err != nil {
		return append(issues, fmt.Sprintf("read_error: %v", err))
	}
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		issues = append(issues, "byte_order_mark_present")
	}

	cues, err := countSRTCues(path)
	if err != nil {
		return append(issues, fmt.Sprintf("read_error: %v", err))
	}
	if cues == 0 {
		return append(issues, "empty_subtitle_file")
	}

	first, last, err := subtitleBounds(path)
	if err != nil {
		issues = append(issues, fmt.Sprintf("timestamp_parse_error: %v", err))
	} else if first == 0 && last == 0 {
		issues = append(issues, "no_valid_timestamps")
	}

	issues = append(issues, checkCueNumbering(string(data))...)
	return issues
}

// checkCueNumbering verifies that each timing line is preceded by the next
// 1-based index.
func checkCueNumbering(content string) []string {
	var issues []string
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	expected := 1
	for i, line := range lines {
		if !strings.Contains(line, "-->") {
			continue
		}
		if i == 0 {
			issues = append(issues, fmt.Sprintf("missing_index: cue %d", expected))
			expected++
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[i-1]))
		switch {
		case err != nil:
			issues = append(issues, fmt.Sprintf("missing_index: cue %d", expected))
		case index != expected:
			issues = append(issues, fmt.Sprintf("index_gap: got %d want %d", index, expected))
		}
		expected++
	}
	return issues
}
