// Package ocr turns timed subtitle bitmaps into a SubRip document.
//
// A Pipeline opens one recognition engine per batch, recognizes every record
// strictly in order, and accumulates the results into a subtitles.Document.
// Any failure aborts the whole batch: there is no per-item skip and no partial
// document. ToSRT adds the save phase, a per-run correlation id, and an
// optional advisory lock on the destination.
package ocr
