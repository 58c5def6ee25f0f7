package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEngineInit marks failures to load the recognition engine or its
	// language data. Nothing has been processed when it is returned.
	ErrEngineInit = errors.New("engine init error")
	// ErrOCRProcessing marks a failure converting or recognizing a single
	// image. The whole batch is aborted.
	ErrOCRProcessing = errors.New("ocr processing error")
	// ErrSerialization marks a failure writing the finished document.
	ErrSerialization = errors.New("serialization error")
	// ErrConfiguration marks an unusable config file or flag value.
	ErrConfiguration = errors.New("configuration error")
	// ErrOutputLocked marks a destination already being written by another run.
	ErrOutputLocked = errors.New("output locked")
	// ErrValidation marks unusable input, such as a malformed event manifest.
	ErrValidation = errors.New("validation error")
)

// Exit codes returned by the CLI for each failure class.
const (
	ExitFailure       = 1
	ExitConfiguration = 2
	ExitEngineInit    = 3
	ExitOCR           = 4
	ExitSerialization = 5
	ExitOutputLocked  = 6
	ExitValidation    = 7
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrOCRProcessing
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a pipeline error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrEngineInit):
		return ExitEngineInit
	case errors.Is(err, ErrOCRProcessing):
		return ExitOCR
	case errors.Is(err, ErrSerialization):
		return ExitSerialization
	case errors.Is(err, ErrOutputLocked):
		return ExitOutputLocked
	case errors.Is(err, ErrValidation):
		return ExitValidation
	default:
		return ExitFailure
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
