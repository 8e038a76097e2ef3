package models

import "time"

// TrayInfo describes a running monitortray instance.
// This corresponds to <config dir>/monitortray.yaml.
type TrayInfo struct {
	Version   string    `yaml:"version"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewTrayInfo creates tray info for the current process.
func NewTrayInfo(version string, pid int) *TrayInfo {
	return &TrayInfo{
		Version:   version,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}
