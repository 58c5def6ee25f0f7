package testsupport

import (
	"path/filepath"
	"testing"

	"supocr/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The language data directory holds a placeholder eng.traineddata so
// presence checks pass; it cannot drive a real Tesseract engine.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Tesseract.DataPath = filepath.Join(base, "tessdata")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	WriteFile(t, filepath.Join(cfgVal.Tesseract.DataPath, "eng.traineddata"), 1024)

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLanguage sets the language specification and writes placeholder
// models for each of its languages.
func WithLanguage(spec string, models ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tesseract.Language = spec
		for _, model := range models {
			WriteFile(b.t, filepath.Join(b.cfg.Tesseract.DataPath, model+".traineddata"), 1024)
		}
	}
}

// WithTessdata points the config at an existing language data directory,
// such as a real installation for engine tests.
func WithTessdata(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tesseract.DataPath = path
	}
}

// WithOutputLock toggles destination locking on the test config.
func WithOutputLock(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.LockOutputs = enabled
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
