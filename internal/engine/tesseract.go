//go:build cgo

package engine

import (
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
)

// NativeAvailable reports whether the Tesseract backend is compiled in.
func NativeAvailable() bool { return true }

type tesseractBackend struct {
	client *gosseract.Client
}

// newTesseractBackend configures a gosseract client and forces Tesseract to
// load its models by recognizing a blank probe image, so missing or corrupt
// language data is reported here rather than on the first subtitle.
func newTesseractBackend(cfg Config) (Backend, error) {
	if err := CheckLanguageData(cfg.DataPath, cfg.Language); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	if err := client.SetTessdataPrefix(cfg.DataPath); err != nil {
		client.Close()
		return nil, fmt.Errorf("set tessdata prefix: %w", err)
	}
	if err := client.SetLanguage(Languages(cfg.Language)...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set language: %w", err)
	}

	backend := &tesseractBackend{client: client}
	probe, err := EncodeTIFF(image.NewGray(image.Rect(0, 0, 8, 8)))
	if err != nil {
		client.Close()
		return nil, err
	}
	if _, err := backend.Text(probe); err != nil {
		client.Close()
		return nil, fmt.Errorf("initialize tesseract: %w", err)
	}
	return backend, nil
}

func (b *tesseractBackend) Text(raster []byte) (string, error) {
	if err := b.client.SetImageFromBytes(raster); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}
	text, err := b.client.Text()
	if err != nil {
		return "", err
	}
	return text, nil
}

func (b *tesseractBackend) Close() error {
	return b.client.Close()
}
