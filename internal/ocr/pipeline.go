package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"supocr/internal/engine"
	"supocr/internal/logging"
	"supocr/internal/services"
	"supocr/internal/subtitles"
	"supocr/internal/timing"
)

const (
	stageOCR  = "ocr"
	stageSave = "save"

	// DefaultProgressInterval is the number of items between progress lines.
	DefaultProgressInterval = 50
)

// Record is one subtitle event: a bitmap shown between two presentation
// clock timestamps (90 kHz ticks). The pipeline only reads the image while
// recognizing it.
type Record struct {
	StartTicks uint64
	EndTicks   uint64
	Image      image.Image
}

// EngineOpener opens the recognition engine for a batch.
type EngineOpener func(cfg engine.Config) (*engine.Engine, error)

// Pipeline recognizes batches of records with a single engine per batch.
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	engineConfig engine.Config
	logger       *slog.Logger
	open         EngineOpener
	sampler      *logging.IntervalSampler
	onItem       func(done, total int)
	lockOutputs  bool
	lockDir      string
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger receiving progress and failure notifications.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithEngineOpener replaces the Tesseract engine (primarily for tests).
func WithEngineOpener(open EngineOpener) Option {
	return func(p *Pipeline) {
		if open != nil {
			p.open = open
		}
	}
}

// WithProgressInterval changes how many items separate progress lines.
func WithProgressInterval(interval int) Option {
	return func(p *Pipeline) {
		p.sampler = logging.NewIntervalSampler(interval)
	}
}

// WithItemObserver registers a callback invoked after every recognized item.
// It is observational only and must not block for long.
func WithItemObserver(fn func(done, total int)) Option {
	return func(p *Pipeline) {
		p.onItem = fn
	}
}

// New constructs a pipeline for the given engine configuration.
func New(cfg engine.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		engineConfig: cfg,
		sampler:      logging.NewIntervalSampler(DefaultProgressInterval),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.open == nil {
		base := p.logger
		p.open = func(cfg engine.Config) (*engine.Engine, error) {
			return engine.Open(cfg, engine.WithLogger(base))
		}
	}
	p.logger = logging.NewComponentLogger(p.logger, "ocr")
	return p
}

// Run recognizes records in order and returns the assembled document. The
// engine is released before Run returns on every path.
func (p *Pipeline) Run(ctx context.Context, records []Record) (*subtitles.Document, error) {
	ctx = services.WithStage(ctx, stageOCR)
	logger := logging.WithContext(ctx, p.logger)
	total := len(records)

	logger.Info("ocr starting",
		logging.Int("item_count", total),
		logging.String("language", p.engineConfig.Language),
	)

	eng, err := p.open(p.engineConfig)
	if err != nil {
		return nil, services.Wrap(services.ErrEngineInit, stageOCR, "open engine",
			fmt.Sprintf("language %q from %q", p.engineConfig.Language, p.engineConfig.DataPath), err)
	}
	defer func() {
		if closeErr := eng.Close(); closeErr != nil {
			logging.WarnWithContext(logger, "recognition engine close failed", "engine_close_failed",
				logging.Error(closeErr),
				logging.String(logging.FieldImpact, "engine resources may not be released until exit"),
			)
		}
	}()

	doc := subtitles.NewDocument(total)
	for i, record := range records {
		cue, err := p.recognize(ctx, eng, doc, i, record)
		if err != nil {
			return nil, err
		}
		logger.Debug("ocr item recognized",
			logging.Int("sequence_number", cue.Index),
			logging.Float64("start_ms", timing.Milliseconds(record.StartTicks)),
			logging.Float64("end_ms", timing.Milliseconds(record.EndTicks)),
			logging.Int("text_length", len(cue.Text)),
		)
		if p.sampler.ShouldLog(i) {
			logger.Info("ocr progress",
				logging.Int("sequence_number", cue.Index),
				logging.Int("item_count", total),
			)
		}
		if p.onItem != nil {
			p.onItem(i+1, total)
		}
	}

	logger.Info("ocr finished", logging.Int("item_count", doc.Len()))
	return doc, nil
}

func (p *Pipeline) recognize(ctx context.Context, eng *engine.Engine, doc *subtitles.Document, index int, record Record) (subtitles.Cue, error) {
	item := fmt.Sprintf("item %d", index+1)
	if err := ctx.Err(); err != nil {
		return subtitles.Cue{}, services.Wrap(services.ErrOCRProcessing, stageOCR, "recognize", item+" not started", err)
	}
	if record.Image == nil {
		return subtitles.Cue{}, services.Wrap(services.ErrOCRProcessing, stageOCR, "recognize", item+" has no image", nil)
	}
	if record.EndTicks < record.StartTicks {
		return subtitles.Cue{}, services.Wrap(services.ErrOCRProcessing, stageOCR, "recognize",
			fmt.Sprintf("%s ends (%d) before it starts (%d)", item, record.EndTicks, record.StartTicks), nil)
	}

	start := timing.ToWallClock(record.StartTicks)
	end := timing.ToWallClock(record.EndTicks)
	text, err := eng.Recognize(ctx, record.Image)
	if err != nil {
		return subtitles.Cue{}, services.Wrap(services.ErrOCRProcessing, stageOCR, "recognize", item, err)
	}
	return doc.Add(start, end, text), nil
}
