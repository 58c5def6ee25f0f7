package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"supocr/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrOCRProcessing, "ocr", "recognize", "item 3", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrOCRProcessing) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"ocr", "recognize", "item 3"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrOCRProcessing) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"config", services.Wrap(services.ErrConfiguration, "config", "load", "", nil), services.ExitConfiguration},
		{"engine", services.Wrap(services.ErrEngineInit, "ocr", "open", "", errors.New("missing")), services.ExitEngineInit},
		{"ocr", services.Wrap(services.ErrOCRProcessing, "ocr", "recognize", "", nil), services.ExitOCR},
		{"save", fmt.Errorf("outer: %w", services.Wrap(services.ErrSerialization, "save", "write", "", nil)), services.ExitSerialization},
		{"locked", services.Wrap(services.ErrOutputLocked, "save", "lock", "", nil), services.ExitOutputLocked},
		{"manifest", services.Wrap(services.ErrValidation, "manifest", "decode", "", nil), services.ExitValidation},
		{"other", errors.New("plain"), services.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}
