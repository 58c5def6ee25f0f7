// Package services defines shared utilities consumed by the OCR pipeline, the
// subtitle writer, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp stage names and run correlation identifiers
//     for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into the engine-init, OCR, and serialization phases.
//   - ExitCode, which translates those markers into process exit statuses.
//
// Use these helpers when wiring new phases so failure handling and
// observability stay uniform across the pipeline.
package services
