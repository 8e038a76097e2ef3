package cli

import (
	"fmt"

	"github.com/monitorctl/monitorctl/internal/config"
	"github.com/monitorctl/monitorctl/internal/models"
	"github.com/monitorctl/monitorctl/internal/platform"
)

// Swapped out in tests.
var (
	newBackend  = platform.New
	configStore = func() *config.File { return config.NewFile() }
)

// session is what a display command works with.
type session struct {
	backend  platform.Backend
	resolved models.ResolvedConfig
}

// openSession loads the config and resolves the target display. displayFlag
// overrides the config; displays are only enumerated when a monitor rule
// has to be evaluated.
func openSession(displayFlag string) (*session, error) {
	backend, err := newBackend()
	if err != nil {
		return nil, err
	}

	cfg, err := configStore().Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var displays []platform.DisplayInfo
	if config.NeedsDisplays(cfg, displayFlag) {
		list, err := backend.ListDisplays()
		if err != nil {
			return nil, fmt.Errorf("failed to list displays: %w", err)
		}
		displays = list.Displays
	}

	return &session{
		backend:  backend,
		resolved: config.Resolve(cfg, displays, displayFlag),
	}, nil
}
