// Package tui implements the interactive input picker.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/monitorctl/monitorctl/internal/traymodel"
)

// RunPicker shows the picker and returns the chosen preset. ok is false when
// the user cancelled.
func RunPicker(title string, entries []traymodel.InputEntry, current *uint16) (entry traymodel.InputEntry, ok bool, err error) {
	p := tea.NewProgram(NewPicker(title, entries, current))

	final, err := p.Run()
	if err != nil {
		return traymodel.InputEntry{}, false, fmt.Errorf("failed to run picker: %w", err)
	}

	picker, isPicker := final.(Picker)
	if !isPicker {
		return traymodel.InputEntry{}, false, nil
	}
	entry, ok = picker.Chosen()
	return entry, ok, nil
}
