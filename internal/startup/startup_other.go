//go:build !darwin && !windows

package startup

import (
	"fmt"
	"runtime"
)

// New reports that start at login is unavailable on this OS.
func New() (Manager, error) {
	return nil, fmt.Errorf("start at login is not supported on %s", runtime.GOOS)
}
