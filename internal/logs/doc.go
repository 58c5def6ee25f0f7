// Package logs reads the per-run log files written under logging.log_dir.
//
// It locates the most recent run log, returns the last N lines with bounded
// memory usage, and powers `supocr logs --follow` by polling for appended
// lines. Callers supply a context so polling stops when the CLI exits.
package logs
