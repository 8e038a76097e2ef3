//go:build !windows

package tray

import _ "embed"

// Black on transparent; macOS tints template icons for the menu bar.
//
//go:embed icon.png
var iconData []byte
