package tray

import "os/exec"

func openPath(path string) error {
	// explorer exits non-zero even on success, so only the start is checked.
	cmd := exec.Command("explorer", path)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
