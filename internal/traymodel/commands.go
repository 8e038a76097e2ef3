// Package traymodel is the UI-independent core of the tray application: the
// command vocabulary, the menu description and the state machine that turns
// commands into side effects.
package traymodel

import (
	"sort"

	"github.com/monitorctl/monitorctl/internal/config"
)

// Menu command ids. Input presets get consecutive ids from CmdBaseInput;
// the fixed actions live above the input range.
const (
	CmdBaseInput        uint16 = 2000
	CmdReload           uint16 = 5000
	CmdQuit             uint16 = 5001
	CmdToggleStartup    uint16 = 5002
	CmdEditConfig       uint16 = 5003
	CmdOpenConfigFolder uint16 = 5004
)

// maxInputs keeps input ids below the fixed action ids.
const maxInputs = int(CmdReload - CmdBaseInput)

// CommandKind identifies what a Command does.
type CommandKind int

const (
	CommandInput CommandKind = iota
	CommandReload
	CommandQuit
	CommandToggleStartup
	CommandEditConfig
	CommandOpenConfigFolder
)

func (k CommandKind) String() string {
	switch k {
	case CommandInput:
		return "input"
	case CommandReload:
		return "reload"
	case CommandQuit:
		return "quit"
	case CommandToggleStartup:
		return "toggle-startup"
	case CommandEditConfig:
		return "edit-config"
	case CommandOpenConfigFolder:
		return "open-config-folder"
	default:
		return "unknown"
	}
}

// Command is a decoded menu action. Value is only meaningful for CommandInput.
type Command struct {
	Kind  CommandKind
	Value uint16
}

// Input returns the command that switches to the given VCP 0x60 value.
func Input(value uint16) Command {
	return Command{Kind: CommandInput, Value: value}
}

// InputEntry is one preset shown in the menu.
type InputEntry struct {
	ID    uint16
	Name  string
	Value uint16
}

// InputsTable maps menu ids to presets in menu order.
type InputsTable struct {
	entries []InputEntry
}

// BuildInputs assigns ids from CmdBaseInput to presets sorted by name, so the
// same presets always get the same ids. An empty map yields the defaults.
func BuildInputs(inputs map[string]uint16) InputsTable {
	inputs = config.EffectiveInputs(inputs)

	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxInputs {
		names = names[:maxInputs]
	}

	entries := make([]InputEntry, 0, len(names))
	for i, name := range names {
		entries = append(entries, InputEntry{
			ID:    CmdBaseInput + uint16(i),
			Name:  name,
			Value: inputs[name],
		})
	}
	return InputsTable{entries: entries}
}

// Entries returns the presets in menu order.
func (t InputsTable) Entries() []InputEntry {
	return append([]InputEntry(nil), t.entries...)
}

// Len returns the number of presets.
func (t InputsTable) Len() int {
	return len(t.entries)
}

// Lookup returns the preset with the given id.
func (t InputsTable) Lookup(id uint16) (InputEntry, bool) {
	if id < CmdBaseInput {
		return InputEntry{}, false
	}
	i := int(id - CmdBaseInput)
	if i >= len(t.entries) {
		return InputEntry{}, false
	}
	return t.entries[i], true
}

// Decode maps a menu id to a Command. Preset ids are checked first, then the
// fixed actions. Unknown ids return false; stray ids are expected during
// menu teardown and are not an error.
func Decode(id uint16, table InputsTable) (Command, bool) {
	if e, ok := table.Lookup(id); ok {
		return Input(e.Value), true
	}

	switch id {
	case CmdReload:
		return Command{Kind: CommandReload}, true
	case CmdQuit:
		return Command{Kind: CommandQuit}, true
	case CmdToggleStartup:
		return Command{Kind: CommandToggleStartup}, true
	case CmdEditConfig:
		return Command{Kind: CommandEditConfig}, true
	case CmdOpenConfigFolder:
		return Command{Kind: CommandOpenConfigFolder}, true
	default:
		return Command{}, false
	}
}
