//go:build windows

package startup

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"
)

const runSubkey = `Software\Microsoft\Windows\CurrentVersion\Run`

// RunKey manages the HKCU Run value that starts the tray at login.
type RunKey struct {
	ValueName  string
	Executable string
}

var _ Manager = (*RunKey)(nil)

// New returns the registry-backed manager.
func New() (Manager, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	return &RunKey{ValueName: AppName, Executable: exe}, nil
}

// IsEnabled reports whether the Run value exists.
func (r *RunKey) IsEnabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runSubkey, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open Run key: %w", err)
	}
	defer k.Close()

	_, _, err = k.GetStringValue(r.ValueName)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read Run value %s: %w", r.ValueName, err)
	}
	return true, nil
}

// SetEnabled writes or deletes the Run value.
func (r *RunKey) SetEnabled(enabled bool) error {
	if !enabled {
		return r.delete()
	}

	k, _, err := registry.CreateKey(registry.CURRENT_USER, runSubkey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(r.ValueName, `"`+r.Executable+`"`); err != nil {
		return fmt.Errorf("failed to write Run value %s: %w", r.ValueName, err)
	}
	return nil
}

func (r *RunKey) delete() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runSubkey, registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer k.Close()

	if err := k.DeleteValue(r.ValueName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete Run value %s: %w", r.ValueName, err)
	}
	return nil
}
