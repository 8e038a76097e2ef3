package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/monitorctl/monitorctl/internal/traymodel"
)

// Picker lets the user choose an input preset, filtering by typed text.
type Picker struct {
	title   string
	entries []traymodel.InputEntry
	visible []traymodel.InputEntry
	filter  string
	cursor  int

	// current is the monitor's active input value, when it could be read.
	current  *uint16
	chosen   *traymodel.InputEntry
	quitting bool
}

// NewPicker creates a picker over entries. current may be nil.
func NewPicker(title string, entries []traymodel.InputEntry, current *uint16) Picker {
	p := Picker{title: title, entries: entries, current: current}
	p.applyFilter()
	if current != nil {
		for i, e := range p.visible {
			if e.Value == *current {
				p.cursor = i
				break
			}
		}
	}
	return p
}

// Chosen returns the selected entry once the picker has exited.
func (p Picker) Chosen() (traymodel.InputEntry, bool) {
	if p.chosen == nil {
		return traymodel.InputEntry{}, false
	}
	return *p.chosen, true
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Cancel):
		p.quitting = true
		return p, tea.Quit

	case key.Matches(keyMsg, pickerKeys.Select):
		if len(p.visible) == 0 {
			return p, nil
		}
		e := p.visible[p.cursor]
		p.chosen = &e
		p.quitting = true
		return p, tea.Quit

	case key.Matches(keyMsg, pickerKeys.Up):
		if p.cursor > 0 {
			p.cursor--
		}

	case key.Matches(keyMsg, pickerKeys.Down):
		if p.cursor < len(p.visible)-1 {
			p.cursor++
		}

	case key.Matches(keyMsg, pickerKeys.Backspace):
		if p.filter != "" {
			r := []rune(p.filter)
			p.filter = string(r[:len(r)-1])
			p.applyFilter()
		}

	case keyMsg.Type == tea.KeyRunes:
		p.filter += string(keyMsg.Runes)
		p.applyFilter()
	}
	return p, nil
}

// applyFilter rebuilds the visible list and keeps the cursor in bounds.
func (p *Picker) applyFilter() {
	visible := make([]traymodel.InputEntry, 0, len(p.entries))
	for _, e := range p.entries {
		if p.filter == "" ||
			fuzzy.MatchNormalizedFold(p.filter, e.Name) ||
			fuzzy.MatchNormalizedFold(p.filter, traymodel.PrettyInputLabel(e.Name)) {
			visible = append(visible, e)
		}
	}
	p.visible = visible
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	if p.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n")
	b.WriteString(filterStyle.Render("> " + p.filter))
	b.WriteString("\n\n")

	if len(p.visible) == 0 {
		b.WriteString(emptyStyle.Render("  No matching inputs"))
		b.WriteString("\n")
	}
	for i, e := range p.visible {
		line := fmt.Sprintf("%s (%d)", traymodel.PrettyInputLabel(e.Name), e.Value)
		if p.current != nil && e.Value == *p.current {
			line += currentStyle.Render(" ● current")
		}
		if i == p.cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLine())
	b.WriteString("\n")
	return b.String()
}
