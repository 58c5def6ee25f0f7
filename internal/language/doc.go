// Package language maps human language codes onto Tesseract model names.
//
// Tesseract names its traineddata files after ISO 639-2 codes with a few
// script-specific variants (chi_sim, chi_tra). Users tend to type ISO 639-1
// codes or English words, so the CLI and config validation use this package
// to suggest the model name that will actually load.
package language
