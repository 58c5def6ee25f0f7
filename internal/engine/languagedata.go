package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const trainedDataExt = ".traineddata"

// CheckLanguageData verifies that dataPath is a directory holding a
// .traineddata model for every language in spec.
func CheckLanguageData(dataPath, spec string) error {
	dataPath = strings.TrimSpace(dataPath)
	if dataPath == "" {
		return errors.New("language data path is empty")
	}
	info, err := os.Stat(dataPath)
	if err != nil {
		return fmt.Errorf("language data path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("language data path %s is not a directory", dataPath)
	}

	var missing []string
	for _, lang := range Languages(spec) {
		model := filepath.Join(dataPath, lang+trainedDataExt)
		info, err := os.Stat(model)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, lang)
		case err != nil:
			return fmt.Errorf("language model %s: %w", model, err)
		case info.IsDir() || info.Size() == 0:
			return fmt.Errorf("language model %s is not a valid model file", model)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("language data missing for %s in %s", strings.Join(missing, ", "), dataPath)
	}
	return nil
}
