// Package config handles configuration loading, saving, resolution and path
// management.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "MONITORCTL_CONFIG"

	// AppDirName is the per-user config directory name.
	AppDirName = "monitorctl"

	// LocalFileName is looked up in the working directory.
	LocalFileName = "monitorctl.json"
)

// File names within the per-user config directory.
const (
	ConfigFileName = "config.json"
	TrayFileName   = "monitortray.yaml"
	LogFileName    = "monitortray.log"
)

// GlobalDir returns the per-user monitorctl directory
// (%AppData%\monitorctl on Windows, ~/Library/Application Support/monitorctl on macOS).
func GlobalDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// Path returns the config file location. Priority:
// 1) $MONITORCTL_CONFIG (if non-blank)
// 2) ./monitorctl.json (if present)
// 3) <GlobalDir>/config.json
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); strings.TrimSpace(p) != "" {
		return p, nil
	}

	if FileExists(LocalFileName) {
		return LocalFileName, nil
	}

	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// TrayFile returns the path to the running tray's instance file.
func TrayFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TrayFileName), nil
}

// LogFile returns the default tray log path.
func LogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// EnsureGlobalDir creates the per-user directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
