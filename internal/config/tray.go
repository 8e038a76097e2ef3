package config

import (
	"os"

	"github.com/monitorctl/monitorctl/internal/models"
)

// LoadTrayInfo loads the tray instance file. Returns nil if it doesn't exist.
func LoadTrayInfo() (*models.TrayInfo, error) {
	path, err := TrayFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.TrayInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveTrayInfo writes the tray instance file.
func SaveTrayInfo(info *models.TrayInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := TrayFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveTrayInfo removes the tray instance file.
func RemoveTrayInfo() error {
	path, err := TrayFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsTrayRunning checks whether the recorded tray process is still alive.
// A stale instance file is removed.
func IsTrayRunning() (bool, *models.TrayInfo, error) {
	info, err := LoadTrayInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	if !processAlive(info.PID) {
		_ = RemoveTrayInfo()
		return false, info, nil
	}
	return true, info, nil
}
