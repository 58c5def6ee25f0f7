package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"supocr/internal/logging"
)

// DefaultLanguage is the recognition language used when none is configured.
const DefaultLanguage = "eng"

var (
	// ErrNativeEngineUnavailable indicates the binary was built without the Tesseract backend.
	ErrNativeEngineUnavailable = errors.New("engine: tesseract backend unavailable")
	// ErrClosed is returned by Recognize after Close.
	ErrClosed = errors.New("engine: closed")
)

// Config selects the language data used by the engine.
type Config struct {
	DataPath string
	Language string
}

// Backend performs recognition on an encoded raster image. Implementations
// are not required to be safe for concurrent use.
type Backend interface {
	Text(raster []byte) (string, error)
	Close() error
}

// BackendFactory creates a backend for the supplied configuration.
type BackendFactory func(cfg Config) (Backend, error)

// Engine owns a single backend instance for the lifetime of a batch.
type Engine struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Option customizes Open.
type Option func(*openOptions)

type openOptions struct {
	factory BackendFactory
	logger  *slog.Logger
}

// WithBackendFactory replaces the Tesseract backend (primarily for tests).
func WithBackendFactory(factory BackendFactory) Option {
	return func(o *openOptions) {
		if factory != nil {
			o.factory = factory
		}
	}
}

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// Open validates cfg, loads the language data, and returns a ready engine.
// The caller must Close the engine.
func Open(cfg Config, opts ...Option) (*Engine, error) {
	options := openOptions{factory: newTesseractBackend}
	for _, opt := range opts {
		opt(&options)
	}

	cfg.DataPath = strings.TrimSpace(cfg.DataPath)
	cfg.Language = strings.TrimSpace(cfg.Language)
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}

	backend, err := options.factory(cfg)
	if err != nil {
		return nil, err
	}
	logger := logging.NewComponentLogger(options.logger, "engine")
	logger.Debug("recognition engine ready",
		logging.String("data_path", cfg.DataPath),
		logging.String("language", cfg.Language),
	)
	return New(backend, logger), nil
}

// New wraps an already initialized backend.
func New(backend Backend, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{backend: backend, logger: logger}
}

// Recognize rasterizes img and returns its trimmed text. The image is not
// retained after the raster conversion.
func (e *Engine) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if img == nil {
		return "", errors.New("engine: nil image")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return "", ErrClosed
	}

	raster, err := EncodeTIFF(img)
	if err != nil {
		return "", err
	}
	text, err := e.backend.Text(raster)
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Close releases the backend. It is safe to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.backend.Close(); err != nil {
		return fmt.Errorf("close engine: %w", err)
	}
	return nil
}

// Languages splits a Tesseract language specification such as "eng+deu".
func Languages(spec string) []string {
	var langs []string
	for _, part := range strings.Split(spec, "+") {
		if part = strings.TrimSpace(part); part != "" {
			langs = append(langs, part)
		}
	}
	if len(langs) == 0 {
		return []string{DefaultLanguage}
	}
	return langs
}
