package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"supocr/internal/engine"
	"supocr/internal/language"
)

// CheckNativeEngine reports whether the binary was built with the Tesseract
// bindings.
func CheckNativeEngine() Result {
	const name = "Tesseract engine"
	if !engine.NativeAvailable() {
		return Result{Name: name, Detail: "not linked (rebuild with CGO_ENABLED=1 and libtesseract installed)"}
	}
	return Result{Name: name, Passed: true, Detail: "linked"}
}

// CheckLanguageData verifies that a model exists for every language in spec.
func CheckLanguageData(dataPath, spec string) Result {
	name := fmt.Sprintf("Language models (%s)", strings.TrimSpace(spec))
	if strings.TrimSpace(dataPath) == "" {
		return Result{Name: name, Detail: "tesseract.data_path not set and TESSDATA_PREFIX empty"}
	}
	if err := engine.CheckLanguageData(dataPath, spec); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: language.DisplaySpec(spec)}
}

// CheckReadableDirectory verifies that the directory exists and can be listed.
func CheckReadableDirectory(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "read ok")
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}
