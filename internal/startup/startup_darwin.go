//go:build darwin

package startup

// New returns the LaunchAgent-backed manager.
func New() (Manager, error) {
	return NewLaunchAgent()
}
