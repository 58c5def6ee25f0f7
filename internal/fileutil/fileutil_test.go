package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")

	err := WriteAtomic(dst, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello world")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("content mismatch: got %q", got)
	}
	assertNoTempFiles(t, filepath.Dir(dst))
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "no", "such", "out.txt")

	err := WriteAtomic(dst, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "no")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("parent directory was created: %v", statErr)
	}
}

func TestWriteAtomicMode(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "dst.bin")
	if err := WriteAtomicMode(dst, 0o600, func(w io.Writer) error { return nil }); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestWriteAtomicKeepsPreviousOnFailure(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dst, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("render failed")
	err := WriteAtomic(dst, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous" {
		t.Fatalf("destination changed: %q", got)
	}
	assertNoTempFiles(t, dir)
}

func TestWriteAtomicReplaces(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")
	for _, content := range []string{"first", "second"} {
		content := content
		if err := WriteAtomic(dst, func(w io.Writer) error {
			_, err := io.WriteString(w, content)
			return err
		}); err != nil {
			t.Fatal(err)
		}
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "second" {
		t.Fatalf("content = %q", got)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}
