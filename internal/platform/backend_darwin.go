//go:build darwin

package platform

// New returns the backend for macOS.
func New() (Backend, error) {
	return NewM1DDCBackend(), nil
}
