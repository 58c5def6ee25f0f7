package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"supocr/internal/config"
	"supocr/internal/logging"
	"supocr/internal/services"
)

func TestNewConsoleIncludesComponentAndRun(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := services.WithRunID(context.Background(), "1a2b3c4d-0000-0000-0000-000000000000")
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "ocr"))
	logger.Info("ocr starting", logging.Int("item_count", 3), logging.String("path", "a b.srt"))

	line := buf.String()
	for _, fragment := range []string{"INFO ocr: ocr starting", "[run 1a2b3c4d]", "item_count=3", `path="a b.srt"`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %q in %q", fragment, line)
		}
	}
	if strings.Contains(line, "correlation_id=") {
		t.Fatalf("correlation id should be rendered in the prefix, got %q", line)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "WARN shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNewJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logging.ErrorWithContext(logger, "ocr failed", "ocr_failed", logging.Error(errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" || entry["msg"] != "ocr failed" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry[logging.FieldEventType] != "ocr_failed" || entry[logging.FieldErrorHint] == nil {
		t.Fatalf("expected enforced fields, got %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "json"

	logger, path, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if filepath.Dir(path) != cfg.Logging.Dir {
		t.Fatalf("unexpected log path %q", path)
	}
	if ok, _ := filepath.Match(logging.LogFilePattern, filepath.Base(path)); !ok {
		t.Fatalf("log file %q does not match %q", path, logging.LogFilePattern)
	}
	logger.Info("hello file")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("expected message in log file, got %q", data)
	}
}

func TestNewFromConfigWithoutDir(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = ""
	logger, path, err := logging.NewFromConfig(&cfg)
	if err != nil || logger == nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no log file, got %q", path)
	}
}

func TestLogFilePath(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	got := logging.LogFilePath("/var/log/supocr", now)
	if got != filepath.Join("/var/log/supocr", "supocr-20240506T070809.log") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("discarded")
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger must be disabled")
	}
	if logging.NewComponentLogger(nil, "x") == nil {
		t.Fatal("expected fallback logger")
	}
}
