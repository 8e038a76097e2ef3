package traymodel

import "github.com/monitorctl/monitorctl/internal/models"

// StartupManager enables or disables launching the tray at login.
type StartupManager interface {
	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}

// ConfigStore is the config document the model reads and patches.
type ConfigStore interface {
	// Load returns nil without error when no config exists.
	Load() (*models.Config, error)
	Path() (string, error)
	// Ensure creates a default config if needed and returns its path.
	Ensure() (string, error)
	SetStartWithLogin(enabled bool) error
}
