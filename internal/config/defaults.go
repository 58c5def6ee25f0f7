package config

const (
	defaultTesseractLanguage = "eng"
	defaultLogDir            = "~/.local/share/supocr/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogRetentionDays  = 30
	defaultLockOutputs       = true
)

// Well-known tessdata locations probed when neither the config file nor
// TESSDATA_PREFIX names one.
var defaultTessdataDirs = []string{
	"/usr/share/tesseract-ocr/5/tessdata",
	"/usr/share/tesseract-ocr/4.00/tessdata",
	"/usr/share/tessdata",
	"/usr/local/share/tessdata",
	"/opt/homebrew/share/tessdata",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tesseract: Tesseract{
			Language: defaultTesseractLanguage,
		},
		Output: Output{
			LockOutputs: defaultLockOutputs,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			Dir:           defaultLogDir,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
