package startup

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

// LaunchAgentLabel identifies the tray's launchd job.
const LaunchAgentLabel = "com.monitorctl.monitorctl"

var plistTemplate = template.Must(template.New("plist").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
  <key>Label</key><string>{{.Label}}</string>
  <key>ProgramArguments</key>
  <array>
    <string>{{.Executable}}</string>
  </array>
  <key>RunAtLoad</key><true/>
  <key>ProcessType</key><string>Interactive</string>
  <key>StandardOutPath</key><string>/tmp/monitortray.out</string>
  <key>StandardErrorPath</key><string>/tmp/monitortray.err</string>
</dict>
</plist>
`))

// RenderLaunchAgent renders the plist that starts exe at login. Values are
// XML-escaped.
func RenderLaunchAgent(label, exe string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Label      string
		Executable string
	}{
		Label:      template.HTMLEscapeString(label),
		Executable: template.HTMLEscapeString(exe),
	}
	if err := plistTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render launch agent: %w", err)
	}
	return buf.String(), nil
}

// LaunchAgent manages ~/Library/LaunchAgents/<label>.plist.
type LaunchAgent struct {
	Label      string
	PlistPath  string
	Executable string
	// launchctl runs launchctl; replaced in tests.
	launchctl func(args ...string) error
	uid       func() int
}

// NewLaunchAgent returns a LaunchAgent for the running executable.
func NewLaunchAgent() (*LaunchAgent, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	return &LaunchAgent{
		Label:      LaunchAgentLabel,
		PlistPath:  filepath.Join(home, "Library", "LaunchAgents", LaunchAgentLabel+".plist"),
		Executable: exe,
		launchctl:  runLaunchctl,
		uid:        os.Getuid,
	}, nil
}

var _ Manager = (*LaunchAgent)(nil)

// IsEnabled reports whether the plist is installed.
func (a *LaunchAgent) IsEnabled() (bool, error) {
	_, err := os.Stat(a.PlistPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// SetEnabled installs or removes the launch agent.
func (a *LaunchAgent) SetEnabled(enabled bool) error {
	if enabled {
		return a.install()
	}
	return a.uninstall()
}

func (a *LaunchAgent) domain() string {
	return "gui/" + strconv.Itoa(a.uid())
}

func (a *LaunchAgent) install() error {
	plist, err := RenderLaunchAgent(a.Label, a.Executable)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(a.PlistPath), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(a.PlistPath), err)
	}
	if err := os.WriteFile(a.PlistPath, []byte(plist), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.PlistPath, err)
	}

	domain := a.domain()
	// Unload any previous instance; it's fine if none is loaded.
	_ = a.launchctl("bootout", domain, a.PlistPath)
	if err := a.launchctl("bootstrap", domain, a.PlistPath); err != nil {
		_ = os.Remove(a.PlistPath)
		return fmt.Errorf("launchctl bootstrap: %w", err)
	}
	_ = a.launchctl("enable", domain+"/"+a.Label)
	return nil
}

func (a *LaunchAgent) uninstall() error {
	if _, err := os.Stat(a.PlistPath); os.IsNotExist(err) {
		return nil
	}

	domain := a.domain()
	_ = a.launchctl("disable", domain+"/"+a.Label)
	_ = a.launchctl("bootout", domain, a.PlistPath)

	if err := os.Remove(a.PlistPath); err != nil {
		return fmt.Errorf("failed to remove %s: %w", a.PlistPath, err)
	}
	return nil
}

func runLaunchctl(args ...string) error {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command("launchctl", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launchctl %s failed (%w):\nstdout:\n%s\nstderr:\n%s",
			strings.Join(args, " "), err, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()))
	}
	return nil
}
