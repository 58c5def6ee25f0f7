// Package engine adapts the Tesseract OCR library to the subtitle pipeline.
//
// An Engine is opened once per batch with a language-data directory and a
// language code, recognizes any number of images sequentially, and must be
// closed by its owner. Each image is converted to an uncompressed TIFF in
// memory before it is handed to the backend, and the recognized text is
// returned with surrounding whitespace removed. An empty string is a valid
// result for an image without text.
//
// The Tesseract backend needs cgo and libtesseract. Builds without cgo get a
// stub backend whose Open fails with ErrNativeEngineUnavailable.
package engine
