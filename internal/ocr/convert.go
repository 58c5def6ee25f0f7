package ocr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"supocr/internal/logging"
	"supocr/internal/services"
	"supocr/internal/subtitles"
)

// WithOutputLock enables an advisory lock on the destination for the whole
// of ToSRT. Lock files live in dir, or the system temp directory when dir is
// empty.
func WithOutputLock(enabled bool, dir string) Option {
	return func(p *Pipeline) {
		p.lockOutputs = enabled
		p.lockDir = dir
	}
}

// ToSRT recognizes records and saves the result to dest as SubRip. Nothing is
// written unless every record was recognized. Failures are logged here and
// returned classified as services.ErrEngineInit, services.ErrOCRProcessing,
// services.ErrSerialization, or services.ErrOutputLocked.
func (p *Pipeline) ToSRT(ctx context.Context, records []Record, dest string) error {
	if _, ok := services.RunIDFromContext(ctx); !ok {
		ctx = services.WithRunID(ctx, uuid.NewString())
	}
	logger := logging.WithContext(ctx, p.logger)

	dest, err := resolveDestination(dest)
	if err != nil {
		logging.ErrorWithContext(logger, "invalid output path", "output_path_invalid", logging.Error(err))
		return err
	}

	if p.lockOutputs {
		unlock, err := p.acquireOutputLock(dest)
		if err != nil {
			logging.ErrorWithContext(logger, "output is locked by another run", "output_locked",
				logging.String("output_path", dest),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "wait for the other run to finish or choose another output path"),
			)
			return err
		}
		defer unlock()
	}

	doc, err := p.Run(ctx, records)
	if err != nil {
		logging.ErrorWithContext(logger, "ocr failed", "ocr_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, ocrHint(err)),
		)
		return err
	}

	if err := subtitles.Write(doc, dest); err != nil {
		err = services.Wrap(services.ErrSerialization, stageSave, "write srt", dest, err)
		logging.ErrorWithContext(logger, "saving subtitles failed", "save_failed",
			logging.String("output_path", dest),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the output directory exists, is writable, and has free space"),
		)
		return err
	}

	logger.Info("subtitles saved",
		logging.String("output_path", dest),
		logging.Int("item_count", doc.Len()),
	)
	return nil
}

func resolveDestination(dest string) (string, error) {
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return "", services.Wrap(services.ErrSerialization, stageSave, "resolve destination", "output path is empty", nil)
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", services.Wrap(services.ErrSerialization, stageSave, "resolve destination", dest, err)
	}
	return abs, nil
}

func (p *Pipeline) acquireOutputLock(dest string) (func(), error) {
	dir := p.lockDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrOutputLocked, stageSave, "lock", "create lock directory", err)
	}
	lock := flock.New(lockPath(dir, dest))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrOutputLocked, stageSave, "lock", dest, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrOutputLocked, stageSave, "lock", dest+" is being written by another run", nil)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			p.logger.Debug("output lock release failed", logging.Error(err))
			return
		}
		if err := os.Remove(lock.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
			p.logger.Debug("output lock cleanup failed", logging.Error(err))
		}
	}, nil
}

// lockPath derives a stable lock file name from the absolute destination.
func lockPath(dir, dest string) string {
	sum := sha256.Sum256([]byte(dest))
	return filepath.Join(dir, fmt.Sprintf("supocr-%s.lock", hex.EncodeToString(sum[:8])))
}

func ocrHint(err error) string {
	switch services.ExitCode(err) {
	case services.ExitEngineInit:
		return "check tesseract.data_path and that <language>.traineddata exists there"
	default:
		return "inspect the failing item's image; the whole batch must be re-run"
	}
}
