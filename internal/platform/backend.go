// Package platform defines the monitor-control backend contract and its
// per-OS implementations.
package platform

import (
	"fmt"
	"strings"
)

// VCPInputSource is the DDC/CI VCP code for input source selection.
const VCPInputSource = 0x60

// DisplayInfo describes one enumerated display. Index is 1-based and only
// stable within a single enumeration. Empty strings mean the value is unknown.
type DisplayInfo struct {
	Index       uint32
	ProductName string
	SystemUUID  string
}

// DisplayList is the result of a display enumeration.
type DisplayList struct {
	Displays []DisplayInfo
	Raw      string // backend output, if any
}

// DoctorReport is a human-readable self-diagnostic.
type DoctorReport struct {
	OK      bool
	Message string
}

// Backend abstracts DDC/CI input switching across platforms.
type Backend interface {
	ListDisplays() (*DisplayList, error)
	SetInput(selector string, value uint16) error
	// GetInput fails with ErrUnsupported where the current input cannot be read.
	GetInput(selector string) (uint16, error)
	// Doctor never fails; problems are reported with OK set to false.
	Doctor() DoctorReport
}

// Label returns the display's name or a placeholder when unknown.
func (d DisplayInfo) Label() string {
	if d.ProductName == "" {
		return "<unknown>"
	}
	return d.ProductName
}

// String formats the display the way `monitorctl list` prints it.
func (d DisplayInfo) String() string {
	uuid := d.SystemUUID
	if uuid == "" {
		uuid = "<unknown>"
	}
	return fmt.Sprintf("[%d] %s (system_uuid=%s)", d.Index, d.Label(), uuid)
}

// FormatDisplays renders one "[N] name" line per display.
func FormatDisplays(displays []DisplayInfo) string {
	lines := make([]string, 0, len(displays))
	for _, d := range displays {
		lines = append(lines, fmt.Sprintf("[%d] %s", d.Index, d.Label()))
	}
	return strings.Join(lines, "\n")
}
