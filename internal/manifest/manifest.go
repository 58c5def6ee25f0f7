package manifest

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"supocr/internal/fileutil"
	"supocr/internal/ocr"
	"supocr/internal/services"
	"supocr/internal/timing"

	// Decoders for the bitmap formats a manifest may reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

const stageManifest = "manifest"

// Event is one manifest entry.
type Event struct {
	StartTicks uint64 `toml:"start_ticks"`
	EndTicks   uint64 `toml:"end_ticks"`
	Image      string `toml:"image"`
}

// Start returns the wall-clock start of the event.
func (e Event) Start() time.Duration { return timing.ToWallClock(e.StartTicks) }

// End returns the wall-clock end of the event.
func (e Event) End() time.Duration { return timing.ToWallClock(e.EndTicks) }

// Duration returns how long the event is shown on screen, or zero when the
// event ends before it starts.
func (e Event) Duration() time.Duration {
	if e.EndTicks < e.StartTicks {
		return 0
	}
	return e.End() - e.Start()
}

// Manifest is an ordered list of events plus the directory their image
// paths are resolved against.
type Manifest struct {
	Events []Event `toml:"event"`

	dir string
}

// Read parses the manifest at path without decoding any image.
func Read(path string) (*Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, services.Wrap(services.ErrValidation, stageManifest, "read", "manifest path is empty", nil)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stageManifest, "open", path, err)
	}
	defer file.Close()

	m, err := Decode(file)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stageManifest, "parse", path, err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stageManifest, "resolve", path, err)
	}
	m.dir = abs
	return m, nil
}

// Decode parses a manifest from r. Relative image paths resolve against the
// working directory until the manifest is given one by Read.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&m); err != nil {
		return nil, err
	}
	for i, event := range m.Events {
		if strings.TrimSpace(event.Image) == "" {
			return nil, fmt.Errorf("event %d: image is required", i+1)
		}
	}
	return &m, nil
}

// Write stores m at path as TOML, replacing any existing file.
func Write(path string, m *Manifest) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		encoder := toml.NewEncoder(w)
		return encoder.Encode(m)
	})
}

// Len returns the number of events.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Events)
}

// ImagePath resolves the image path of event i.
func (m *Manifest) ImagePath(i int) string {
	p := strings.TrimSpace(m.Events[i].Image)
	if filepath.IsAbs(p) || m.dir == "" {
		return p
	}
	return filepath.Join(m.dir, p)
}

// Records decodes every event image and returns the batch in manifest
// order. The first unreadable image fails the whole manifest.
func (m *Manifest) Records() ([]ocr.Record, error) {
	records := make([]ocr.Record, 0, m.Len())
	for i, event := range m.Events {
		path := m.ImagePath(i)
		img, err := decodeImage(path)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, stageManifest, "decode image",
				fmt.Sprintf("event %d (%s)", i+1, path), err)
		}
		records = append(records, ocr.Record{
			StartTicks: event.StartTicks,
			EndTicks:   event.EndTicks,
			Image:      img,
		})
	}
	return records, nil
}

// Load reads the manifest at path and decodes all of its images.
func Load(path string) ([]ocr.Record, error) {
	m, err := Read(path)
	if err != nil {
		return nil, err
	}
	return m.Records()
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
