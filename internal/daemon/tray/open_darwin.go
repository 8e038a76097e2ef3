package tray

import "os/exec"

func openPath(path string) error {
	cmd := exec.Command("open", path)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
