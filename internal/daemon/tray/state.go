// Package tray binds the tray model to the system tray icon and menu.
package tray

import (
	"log"

	"github.com/monitorctl/monitorctl/internal/traymodel"
)

// shell is the part of the tray UI the dispatcher drives.
type shell interface {
	Render(spec traymodel.MenuSpec)
	SetTooltip(tip string)
	Notify(title, message string)
	Open(path string) error
	Quit()
}

// dispatcher owns the model. All of its methods must be called from the
// single dispatch goroutine.
type dispatcher struct {
	model   *traymodel.Model
	startup traymodel.StartupManager
	ui      shell

	notified string
}

func newDispatcher(model *traymodel.Model, startup traymodel.StartupManager, ui shell) *dispatcher {
	return &dispatcher{model: model, startup: startup, ui: ui}
}

// refresh renders the full state, as after a reload.
func (d *dispatcher) refresh() {
	d.apply(traymodel.Update{RefreshMenu: true, RefreshTooltip: true})
}

// dispatch handles one menu id. It reports false once the tray should exit.
func (d *dispatcher) dispatch(id uint16) bool {
	cmd, ok := d.model.Decode(id)
	if !ok {
		log.Printf("Ignoring unknown menu id %d", id)
		return true
	}

	log.Printf("Handling %s (id %d)", cmd.Kind, id)
	update := d.model.Handle(cmd, d.startup)
	return d.apply(update)
}

func (d *dispatcher) apply(update traymodel.Update) bool {
	if update.RefreshMenu {
		d.ui.Render(d.model.Menu())
	}
	if update.RefreshTooltip {
		d.ui.SetTooltip(d.model.Tooltip())
		d.notifyError()
	}
	if update.OpenPath != "" {
		if err := d.ui.Open(update.OpenPath); err != nil {
			log.Printf("Failed to open %s: %v", update.OpenPath, err)
		}
	}
	if update.Quit {
		d.ui.Quit()
		return false
	}
	return true
}

// notifyError raises a desktop notification the first time an error shows up.
func (d *dispatcher) notifyError() {
	msg := d.model.LastError()
	if msg == d.notified {
		return
	}
	d.notified = msg
	if msg == "" {
		return
	}
	log.Printf("Error: %s", msg)
	d.ui.Notify(traymodel.AppName, msg)
}
