// Package startup implements start-at-login for the tray on each OS.
package startup

// AppName is the registry value name and the tray binary name.
const AppName = "monitortray"

// Manager toggles whether the tray starts at login.
type Manager interface {
	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}
