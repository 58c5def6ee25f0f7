// Package logging assembles structured slog loggers and formatting helpers used
// across supocr.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the batch run id and phase. The package also provides a no-op
// logger for tests and wiring code that cannot fail, an interval sampler for
// periodic progress lines, and log-file retention.
package logging
