package traymodel

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/x/ansi"

	"github.com/monitorctl/monitorctl/internal/config"
	"github.com/monitorctl/monitorctl/internal/platform"
)

// AppName is shown in the tooltip and notifications.
const AppName = "monitortray"

// maxTooltipWidth is the Windows NOTIFYICONDATA tooltip limit minus the NUL.
const maxTooltipWidth = 127

// Update tells the UI layer what to do after a command was handled.
type Update struct {
	RefreshMenu    bool
	RefreshTooltip bool
	Quit           bool
	OpenPath       string
}

// Model is the tray session state. It is not safe for concurrent use; the
// UI must deliver one command at a time.
type Model struct {
	backend platform.Backend
	store   ConfigStore

	inputs          InputsTable
	displaySelector string
	lastError       string
	startEnabled    bool
	startPref       *bool
}

// New loads and resolves the configuration and syncs the startup setting.
// Failures are recorded as the last error; the model is always usable.
func New(backend platform.Backend, store ConfigStore, startup StartupManager) *Model {
	m := &Model{backend: backend, store: store}
	m.Reload(startup)
	return m
}

// Inputs returns the current preset table.
func (m *Model) Inputs() InputsTable { return m.inputs }

// DisplaySelector returns the selector commands are sent to.
func (m *Model) DisplaySelector() string { return m.displaySelector }

// LastError returns the most recent failure, or "" if the last action succeeded.
func (m *Model) LastError() string { return m.lastError }

// StartEnabled reports whether start at login is on.
func (m *Model) StartEnabled() bool { return m.startEnabled }

// StartPreference returns the start_with_windows value from the config, or
// nil when the config leaves it to the OS.
func (m *Model) StartPreference() *bool { return m.startPref }

// Decode maps a menu id using the model's current preset table.
func (m *Model) Decode(id uint16) (Command, bool) {
	return Decode(id, m.inputs)
}

// Menu describes the menu for the current state.
func (m *Model) Menu() MenuSpec {
	items := []MenuItem{header("Inputs")}
	for _, e := range m.inputs.entries {
		items = append(items, action(e.ID, fmt.Sprintf("%s (%d)", PrettyInputLabel(e.Name), e.Value), false))
	}
	items = append(items,
		separator(),
		header("Actions"),
		action(CmdToggleStartup, "Start at login", m.startEnabled),
		action(CmdEditConfig, "Edit config", false),
		action(CmdOpenConfigFolder, "Open config folder", false),
		action(CmdReload, "Reload config", false),
		action(CmdQuit, "Quit", false),
	)
	return MenuSpec{Items: items}
}

// Tooltip returns the tray tooltip: the last error if any, otherwise the
// active display.
func (m *Model) Tooltip() string {
	tip := fmt.Sprintf("%s - display %s", AppName, m.displaySelector)
	if m.lastError != "" {
		tip = m.lastError
	}
	return ansi.Truncate(tip, maxTooltipWidth, "…")
}

// Handle performs cmd. Failures never escape: they become the last error and
// request a tooltip refresh.
func (m *Model) Handle(cmd Command, startup StartupManager) Update {
	switch cmd.Kind {
	case CommandInput:
		if err := m.setInput(cmd.Value); err != nil {
			m.lastError = err.Error()
		}
		return Update{RefreshTooltip: true}

	case CommandReload:
		return m.Reload(startup)

	case CommandToggleStartup:
		if err := m.toggleStartup(startup); err != nil {
			return m.noteError(err)
		}
		return Update{RefreshMenu: true, RefreshTooltip: true}

	case CommandEditConfig:
		path, err := m.store.Ensure()
		if err != nil {
			return m.noteError(fmt.Errorf("failed to create config: %w", err))
		}
		return Update{OpenPath: path}

	case CommandOpenConfigFolder:
		path, err := m.store.Path()
		if err != nil {
			return m.noteError(fmt.Errorf("no config path available: %w", err))
		}
		return Update{OpenPath: filepath.Dir(path)}

	case CommandQuit:
		return Update{Quit: true}

	default:
		return Update{}
	}
}

// Reload re-reads the config, resolves the display and presets, and re-applies
// the startup preference.
func (m *Model) Reload(startup StartupManager) Update {
	selector, inputs, pref, loadErr := m.load()
	m.displaySelector = selector
	m.inputs = inputs
	m.startPref = pref

	enabled, startupErr := applyStartupPref(pref, startup)
	m.startEnabled = enabled

	switch {
	case loadErr != nil:
		m.lastError = loadErr.Error()
	case startupErr != nil:
		m.lastError = startupErr.Error()
	default:
		m.lastError = ""
	}
	return Update{RefreshMenu: true, RefreshTooltip: true}
}

func (m *Model) noteError(err error) Update {
	m.lastError = err.Error()
	return Update{RefreshTooltip: true}
}

// load resolves a fresh selector and preset table. On a config error the
// defaults are used and the error is returned alongside them.
func (m *Model) load() (string, InputsTable, *bool, error) {
	cfg, err := m.store.Load()
	if err != nil {
		return config.DefaultSelector, BuildInputs(nil), nil, err
	}

	var pref *bool
	if cfg != nil && cfg.StartWithLogin != nil {
		v := *cfg.StartWithLogin
		pref = &v
	}

	var (
		displays []platform.DisplayInfo
		listErr  error
	)
	if config.NeedsDisplays(cfg, "") {
		list, err := m.backend.ListDisplays()
		if err != nil {
			listErr = fmt.Errorf("failed to list displays: %w", err)
		} else {
			displays = list.Displays
		}
	}

	resolved := config.Resolve(cfg, displays, "")
	return resolved.DisplaySelector, BuildInputs(resolved.Inputs), pref, listErr
}

func (m *Model) setInput(value uint16) error {
	if err := m.backend.SetInput(m.displaySelector, value); err != nil {
		return fmt.Errorf("failed to set input %d on '%s': %w", value, m.displaySelector, err)
	}
	m.lastError = ""
	return nil
}

// toggleStartup flips start at login. The in-memory flag only changes when
// both the OS setting and the config file were updated.
func (m *Model) toggleStartup(startup StartupManager) error {
	if startup == nil {
		return errors.New("start at login is not available")
	}

	next := !m.startEnabled
	if err := startup.SetEnabled(next); err != nil {
		return fmt.Errorf("failed to update startup setting: %w", err)
	}
	if err := m.store.SetStartWithLogin(next); err != nil {
		err = fmt.Errorf("failed to update config: %w", err)
		if revertErr := startup.SetEnabled(!next); revertErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to revert startup setting: %w", revertErr))
		}
		return err
	}

	m.startEnabled = next
	m.startPref = &next
	m.lastError = ""
	return nil
}

// applyStartupPref enforces pref, or reads the OS state when there is none.
// The OS is only written when it differs from pref, since re-registering a
// launch agent restarts it. A failed write is reported and the OS state is
// read back so the menu checkmark stays truthful; the write is retried on
// the next reload.
func applyStartupPref(pref *bool, startup StartupManager) (bool, error) {
	if startup == nil {
		return false, nil
	}

	if pref != nil {
		if current, err := startup.IsEnabled(); err == nil && current == *pref {
			return current, nil
		}
		err := startup.SetEnabled(*pref)
		if err == nil {
			return *pref, nil
		}
		actual, _ := startup.IsEnabled()
		return actual, fmt.Errorf("start at login preference not applied: %w", err)
	}

	enabled, err := startup.IsEnabled()
	if err != nil {
		return false, fmt.Errorf("failed to read startup setting: %w", err)
	}
	return enabled, nil
}
