//go:build windows

package platform

// New returns the backend for Windows.
func New() (Backend, error) {
	return NewDXVA2Backend(), nil
}
