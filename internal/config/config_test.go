package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"supocr/internal/config"
)

func TestLoadDefaultConfigUsesEnvTessdataAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	tessdata := filepath.Join(tempHome, "tessdata")
	t.Setenv("TESSDATA_PREFIX", tessdata)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "supocr", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Tesseract.DataPath != tessdata {
		t.Fatalf("expected data path from env, got %q", cfg.Tesseract.DataPath)
	}
	if cfg.Tesseract.Language != "eng" {
		t.Fatalf("expected default language eng, got %q", cfg.Tesseract.Language)
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "supocr", "logs")
	if cfg.Logging.Dir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Logging.Dir, wantLogDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.Output.LockOutputs {
		t.Fatal("expected output locking enabled by default")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("TESSDATA_PREFIX", "/ignored")

	path := filepath.Join(tempHome, "custom.toml")
	payload := map[string]any{
		"tesseract": map[string]any{
			"data_path": "~/models",
			"language":  " eng+deu ",
		},
		"output": map[string]any{
			"lock_outputs": false,
		},
		"logging": map[string]any{
			"format":         "JSON",
			"level":          "Debug",
			"log_dir":        "~/logs",
			"retention_days": -4,
		},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Tesseract.DataPath != filepath.Join(tempHome, "models") {
		t.Fatalf("unexpected data path %q", cfg.Tesseract.DataPath)
	}
	if cfg.Tesseract.Language != "eng+deu" {
		t.Fatalf("unexpected language %q", cfg.Tesseract.Language)
	}
	if cfg.Output.LockOutputs {
		t.Fatal("expected lock_outputs false")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if cfg.Logging.Dir != filepath.Join(tempHome, "logs") {
		t.Fatalf("unexpected log dir %q", cfg.Logging.Dir)
	}
	if cfg.Logging.RetentionDays != 0 {
		t.Fatalf("expected negative retention clamped, got %d", cfg.Logging.RetentionDays)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if info, err := os.Stat(cfg.Logging.Dir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[tesseract]\nlangauge = \"eng\"\n", "parse config"},
		{"bad language", "[tesseract]\nlanguage = \"en\"\n", "try \"eng\""},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateLanguage(t *testing.T) {
	valid := []string{"eng", "eng+deu", "chi_sim", "jpn_vert+eng", "osd", "script/Latin"}
	for _, spec := range valid {
		if err := config.ValidateLanguage(spec); err != nil {
			t.Errorf("ValidateLanguage(%q) = %v", spec, err)
		}
	}
	invalid := []string{"", "eng+", "de", "ENG", "e1g", "../eng", "english"}
	for _, spec := range invalid {
		if err := config.ValidateLanguage(spec); err == nil {
			t.Errorf("ValidateLanguage(%q) expected error", spec)
		}
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Tesseract.Language != "eng" {
		t.Fatalf("unexpected language %q", cfg.Tesseract.Language)
	}
	if !strings.Contains(config.SampleConfig(), "[tesseract]") {
		t.Fatal("expected sample to document the tesseract section")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, _, _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected error when config path is a directory")
	}
}
