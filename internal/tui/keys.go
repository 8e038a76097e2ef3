package tui

import "github.com/charmbracelet/bubbles/key"

// PickerKeys are active in the input picker. Printable keys go to the filter.
type PickerKeys struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Backspace key.Binding
	Cancel    key.Binding
}

var pickerKeys = PickerKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/↓", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↑/↓", "navigate"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "switch input"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("Backspace", "edit filter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "cancel"),
	),
}

// helpLine renders the short key help shown under the list.
func helpLine() string {
	bindings := []key.Binding{pickerKeys.Up, pickerKeys.Select, pickerKeys.Cancel}
	s := ""
	for i, b := range bindings {
		if i > 0 {
			s += helpSepStyle.Render(" • ")
		}
		h := b.Help()
		s += helpKeyStyle.Render(h.Key) + " " + helpDescStyle.Render(h.Desc)
	}
	return s
}
