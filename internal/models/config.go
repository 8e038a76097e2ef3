// Package models defines the data structures shared by the CLI and the tray.
package models

// MonitorMatch selects a physical display for a MonitorRule.
// Index takes precedence over Contains when both are set.
type MonitorMatch struct {
	Contains *string `json:"contains,omitempty"`
	Index    *uint32 `json:"index,omitempty"`
}

// MonitorRule binds a display match to an optional selector override and
// rule-specific input presets.
type MonitorRule struct {
	Match   MonitorMatch      `json:"match"`
	Display *string           `json:"display,omitempty"`
	Inputs  map[string]uint16 `json:"inputs,omitempty"`
}

// Config is the user's monitorctl configuration document.
type Config struct {
	StartWithLogin *bool             `json:"start_with_windows,omitempty"`
	DefaultDisplay *string           `json:"default_display,omitempty"`
	Inputs         map[string]uint16 `json:"inputs,omitempty"`
	Monitors       []MonitorRule     `json:"monitors,omitempty"`
}

// ResolvedConfig is the outcome of resolving a Config against the displays
// that are currently connected.
type ResolvedConfig struct {
	DisplaySelector string
	Inputs          map[string]uint16
}
