package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckLanguageData(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "eng.traineddata"), []byte("model"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "empty.traineddata"), nil, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := CheckLanguageData(dir, "eng"); err != nil {
		t.Fatalf("expected eng to be present: %v", err)
	}
	err := CheckLanguageData(dir, "eng+deu")
	if err == nil || !strings.Contains(err.Error(), "deu") {
		t.Fatalf("expected missing deu, got %v", err)
	}
	if err := CheckLanguageData(dir, "empty"); err == nil {
		t.Fatal("expected error for empty model file")
	}
	if err := CheckLanguageData(filepath.Join(dir, "nope"), "eng"); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if err := CheckLanguageData(filepath.Join(dir, "eng.traineddata"), "eng"); err == nil {
		t.Fatal("expected error when data path is a file")
	}
	if err := CheckLanguageData("", "eng"); err == nil {
		t.Fatal("expected error for empty path")
	}
}
