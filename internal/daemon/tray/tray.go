package tray

import (
	"log"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/getlantern/systray"

	"github.com/monitorctl/monitorctl/internal/traymodel"
)

// maxInputSlots is how many presets the menu can show.
const maxInputSlots = 16

// Options configures Run.
type Options struct {
	Startup traymodel.StartupManager
	// Reloads, if set, delivers config change notifications.
	Reloads <-chan struct{}
	// OnExit is called after the tray loop has stopped.
	OnExit func()
}

// slot is one preallocated menu item and the id it currently sends.
type slot struct {
	item *systray.MenuItem
	mu   sync.RWMutex
	id   uint16
}

func (s *slot) set(id uint16) {
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
}

func (s *slot) get() uint16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

var (
	model *traymodel.Model
	opts  Options

	ids  = make(chan uint16, 16)
	once sync.Once

	inputsHeader  *systray.MenuItem
	actionsHeader *systray.MenuItem
	inputSlots    [maxInputSlots]*slot
	actionItems   = map[uint16]*systray.MenuItem{}
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
func Run(m *traymodel.Model, o Options) {
	model = m
	opts = o
	beeep.AppName = traymodel.AppName
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTitle("")

	inputsHeader = systray.AddMenuItem("Inputs", "")
	inputsHeader.Disable()

	// Pre-allocate input slots (hidden until rendered)
	for i := range inputSlots {
		s := &slot{item: systray.AddMenuItem("", "")}
		s.item.Hide()
		inputSlots[i] = s
		go forwardSlot(s)
	}

	systray.AddSeparator()

	actionsHeader = systray.AddMenuItem("Actions", "")
	actionsHeader.Disable()

	for _, a := range []struct {
		id    uint16
		title string
		tip   string
	}{
		{traymodel.CmdToggleStartup, "Start at login", "Launch monitortray when you log in"},
		{traymodel.CmdEditConfig, "Edit config", "Open the config file"},
		{traymodel.CmdOpenConfigFolder, "Open config folder", ""},
		{traymodel.CmdReload, "Reload config", ""},
		{traymodel.CmdQuit, "Quit", "Quit monitortray"},
	} {
		var item *systray.MenuItem
		if a.id == traymodel.CmdToggleStartup {
			item = systray.AddMenuItemCheckbox(a.title, a.tip, false)
		} else {
			item = systray.AddMenuItem(a.title, a.tip)
		}
		actionItems[a.id] = item
		go forwardItem(item, a.id)
	}

	d := newDispatcher(model, opts.Startup, systrayShell{})
	d.refresh()

	go forwardReloads(opts.Reloads)
	go run(d)
}

func onQuit() {
	if opts.OnExit != nil {
		opts.OnExit()
	}
}

// run is the dispatch goroutine; it is the only code touching the model.
func run(d *dispatcher) {
	for id := range ids {
		if !d.dispatch(id) {
			return
		}
	}
}

func forwardItem(item *systray.MenuItem, id uint16) {
	for range item.ClickedCh {
		ids <- id
	}
}

func forwardSlot(s *slot) {
	for range s.item.ClickedCh {
		if id := s.get(); id != 0 {
			ids <- id
		}
	}
}

func forwardReloads(reloads <-chan struct{}) {
	if reloads == nil {
		return
	}
	for range reloads {
		log.Println("Config changed, reloading")
		ids <- traymodel.CmdReload
	}
}

// systrayShell renders onto the preallocated systray items.
type systrayShell struct{}

func (systrayShell) Render(spec traymodel.MenuSpec) {
	next := 0
	for _, item := range spec.Items {
		if item.Kind != traymodel.MenuAction {
			continue
		}
		if fixed, ok := actionItems[item.ID]; ok {
			fixed.SetTitle(item.Title)
			setChecked(fixed, item.Checked)
			continue
		}
		if next >= maxInputSlots {
			log.Printf("Menu full, dropping %q", item.Title)
			continue
		}
		s := inputSlots[next]
		s.set(item.ID)
		s.item.SetTitle(item.Title)
		setChecked(s.item, item.Checked)
		s.item.Show()
		next++
	}
	for _, s := range inputSlots[next:] {
		s.set(0)
		s.item.Hide()
	}
}

func (systrayShell) SetTooltip(tip string) {
	systray.SetTooltip(tip)
}

func (systrayShell) Notify(title, message string) {
	if err := beeep.Notify(title, message, iconData); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

func (systrayShell) Open(path string) error {
	return openPath(path)
}

func (systrayShell) Quit() {
	once.Do(systray.Quit)
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}
