//go:build !darwin && !windows

package platform

import (
	"fmt"
	"runtime"
)

// New reports that no backend exists for this OS.
func New() (Backend, error) {
	return nil, fmt.Errorf("monitor control is not supported on %s: %w", runtime.GOOS, ErrUnsupported)
}
