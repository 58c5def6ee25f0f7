// Package main hosts the supocr CLI entrypoint and command graph.
//
// The Cobra-based command tree loads the configuration once, turns event
// manifests into SubRip files through the ocr pipeline, and offers
// inspection, read-back verification, and environment checks. Process exit
// codes follow services.ExitCode so scripts can tell an engine setup
// problem from a bad image or a failed write.
//
// Keep this package lean: behaviour lives in the internal packages and is
// only surfaced here through commands and flags.
package main
