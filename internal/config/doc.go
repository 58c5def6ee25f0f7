// Package config loads, normalizes, and validates supocr configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TESSDATA_PREFIX environment
// fallback for the Tesseract language-data directory. Only the [tesseract]
// section reaches the OCR core; [logging] and [output] configure the CLI shell.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
