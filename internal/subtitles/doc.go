// Package subtitles holds the in-memory text subtitle document produced by the
// OCR pipeline and renders it as SubRip.
//
// A Document is an append-only list of cues whose indices are assigned on
// insertion, so numbering is always 1-based and gap-free. Write renders the
// document as UTF-8 without a byte-order mark and replaces the destination
// atomically. ValidateSRTContent reads a written file back and reports format
// problems for the verify command.
package subtitles
