// Package preflight provides readiness checks for the Tesseract language
// data and the filesystem paths supocr depends on.
//
// The CLI "supocr doctor" command runs RunAll and renders the results as a
// table. The checks never open the recognition engine; they only inspect
// what it will need, so a failing check explains an EngineInitError before
// a conversion is attempted.
package preflight
