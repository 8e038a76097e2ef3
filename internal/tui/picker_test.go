package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/monitorctl/monitorctl/internal/traymodel"
)

func testEntries() []traymodel.InputEntry {
	return traymodel.BuildInputs(map[string]uint16{
		"dp1":   15,
		"hdmi1": 17,
		"usb_c": 26,
	}).Entries()
}

func press(p Picker, msgs ...tea.KeyMsg) (Picker, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = p.Update(msg)
		p = m.(Picker)
	}
	return p, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerNavigateAndSelect(t *testing.T) {
	p := NewPicker("Inputs", testEntries(), nil)

	p, cmd := press(p,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, // clamped at the last entry
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if cmd == nil {
		t.Fatal("select did not quit the program")
	}
	got, ok := p.Chosen()
	if !ok {
		t.Fatal("Chosen() = false after enter")
	}
	if got.Name != "hdmi1" || got.Value != 17 {
		t.Errorf("Chosen() = %+v, want hdmi1=17", got)
	}
	if p.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestPickerFilter(t *testing.T) {
	p := NewPicker("Inputs", testEntries(), nil)

	p, _ = press(p, runes("us"))
	if len(p.visible) != 1 || p.visible[0].Name != "usb_c" {
		t.Fatalf("filter %q visible = %+v", p.filter, p.visible)
	}

	// Pretty labels match too.
	p, _ = press(p, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("display"))
	if len(p.visible) != 1 || p.visible[0].Name != "dp1" {
		t.Fatalf("filter %q visible = %+v", p.filter, p.visible)
	}

	p, _ = press(p, runes("zz"))
	if len(p.visible) != 0 {
		t.Fatalf("filter %q visible = %+v, want none", p.filter, p.visible)
	}
	if !strings.Contains(p.View(), "No matching inputs") {
		t.Error("empty filter result not shown")
	}

	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter with no matches should not quit")
	}
	if _, ok := p.Chosen(); ok {
		t.Error("Chosen() = true with no matches")
	}
}

func TestPickerCancel(t *testing.T) {
	p, cmd := press(NewPicker("Inputs", testEntries(), nil), tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc did not quit the program")
	}
	if _, ok := p.Chosen(); ok {
		t.Error("Chosen() = true after cancel")
	}
}

func TestPickerStartsOnCurrentInput(t *testing.T) {
	current := uint16(26)
	p := NewPicker("Inputs", testEntries(), &current)

	if e := p.visible[p.cursor]; e.Value != 26 {
		t.Errorf("cursor on %+v, want the current input", e)
	}
	if !strings.Contains(p.View(), "current") {
		t.Error("current input not marked")
	}
}
