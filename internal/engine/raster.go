package engine

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/tiff"
)

// EncodeTIFF converts img to an uncompressed TIFF held in memory.
func EncodeTIFF(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("rasterize: empty image bounds %v", bounds)
	}
	var buf bytes.Buffer
	buf.Grow(bounds.Dx()*bounds.Dy()*4 + 512)
	if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Uncompressed}); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return buf.Bytes(), nil
}
