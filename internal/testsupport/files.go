package testsupport

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"supocr/internal/manifest"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}

// Bitmap returns a white subtitle-sized image with a dark bar across the
// middle, enough structure to survive raster round-trips.
func Bitmap(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.Gray{Y: 0xFF}
			if y >= height/3 && y < 2*height/3 && x >= width/8 && x < width-width/8 {
				c = color.Gray{Y: 0x10}
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}

// WritePNG encodes a Bitmap of the given size to path.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, Bitmap(width, height)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// WriteManifest writes one PNG per event into dir and a manifest referencing
// them, returning the manifest path. Events are spaced one second apart and
// shown for half a second.
func WriteManifest(t testing.TB, dir string, events int) string {
	t.Helper()

	m := &manifest.Manifest{Events: make([]manifest.Event, 0, events)}
	for i := 0; i < events; i++ {
		name := fmt.Sprintf("%04d.png", i+1)
		WritePNG(t, filepath.Join(dir, name), 64, 16)
		start := uint64(i) * 90_000
		m.Events = append(m.Events, manifest.Event{
			StartTicks: start,
			EndTicks:   start + 45_000,
			Image:      name,
		})
	}
	path := filepath.Join(dir, "events.toml")
	if err := manifest.Write(path, m); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}
