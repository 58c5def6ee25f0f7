//go:build !cgo

package engine

// NativeAvailable reports whether the Tesseract backend is compiled in.
func NativeAvailable() bool { return false }

// newTesseractBackend returns an error when the backend is not built.
func newTesseractBackend(Config) (Backend, error) {
	return nil, ErrNativeEngineUnavailable
}
