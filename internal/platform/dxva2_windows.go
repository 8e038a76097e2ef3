//go:build windows

package platform

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32 = windows.NewLazySystemDLL("user32.dll")
	modDxva2  = windows.NewLazySystemDLL("dxva2.dll")

	procEnumDisplayMonitors                     = modUser32.NewProc("EnumDisplayMonitors")
	procGetNumberOfPhysicalMonitorsFromHMONITOR = modDxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	procGetPhysicalMonitorsFromHMONITOR         = modDxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	procDestroyPhysicalMonitors                 = modDxva2.NewProc("DestroyPhysicalMonitors")
	procSetVCPFeature                           = modDxva2.NewProc("SetVCPFeature")
	procGetVCPFeatureAndVCPFeatureReply         = modDxva2.NewProc("GetVCPFeatureAndVCPFeatureReply")
)

var errNoPhysicalMonitors = errors.New("no physical monitors found via Dxva2")

// physicalMonitor mirrors PHYSICAL_MONITOR (packed: HANDLE + WCHAR[128]).
type physicalMonitor struct {
	handle      windows.Handle
	description [128]uint16
}

func (m *physicalMonitor) name() string {
	return windows.UTF16ToString(m.description[:])
}

// The enumeration callback is created once; syscall callbacks are never freed.
var (
	enumMu       sync.Mutex
	enumHandles  []uintptr
	enumCallback = windows.NewCallback(func(hmonitor, hdc, rect, lparam uintptr) uintptr {
		enumHandles = append(enumHandles, hmonitor)
		return 1
	})
)

// DXVA2Backend drives displays through the Windows Monitor Configuration API.
type DXVA2Backend struct{}

var _ Backend = (*DXVA2Backend)(nil)

// NewDXVA2Backend creates the native Windows backend.
func NewDXVA2Backend() *DXVA2Backend {
	return &DXVA2Backend{}
}

func enumDisplayMonitors() ([]uintptr, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	r1, _, e1 := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if r1 == 0 {
		return nil, backendErr("EnumDisplayMonitors", e1)
	}
	return append([]uintptr(nil), enumHandles...), nil
}

// enumPhysicalMonitors returns every physical monitor. Callers must release
// the result with destroyPhysicalMonitors.
func enumPhysicalMonitors() ([]physicalMonitor, error) {
	hmonitors, err := enumDisplayMonitors()
	if err != nil {
		return nil, err
	}

	var all []physicalMonitor
	for _, hmon := range hmonitors {
		var count uint32
		r1, _, _ := procGetNumberOfPhysicalMonitorsFromHMONITOR.Call(hmon, uintptr(unsafe.Pointer(&count)))
		if r1 == 0 || count == 0 {
			continue
		}
		mons := make([]physicalMonitor, count)
		r1, _, _ = procGetPhysicalMonitorsFromHMONITOR.Call(hmon, uintptr(count), uintptr(unsafe.Pointer(&mons[0])))
		if r1 == 0 {
			continue
		}
		all = append(all, mons...)
	}
	return all, nil
}

func destroyPhysicalMonitors(mons []physicalMonitor) {
	if len(mons) == 0 {
		return
	}
	_, _, _ = procDestroyPhysicalMonitors.Call(uintptr(len(mons)), uintptr(unsafe.Pointer(&mons[0])))
}

func describe(mons []physicalMonitor) []DisplayInfo {
	displays := make([]DisplayInfo, 0, len(mons))
	for i := range mons {
		displays = append(displays, DisplayInfo{
			Index:       uint32(i + 1),
			ProductName: mons[i].name(),
		})
	}
	return displays
}

// withMonitor enumerates, resolves the selector and calls fn on the match.
func withMonitor(selector string, fn func(m *physicalMonitor) error) error {
	mons, err := enumPhysicalMonitors()
	if err != nil {
		return err
	}
	defer destroyPhysicalMonitors(mons)

	if len(mons) == 0 {
		return errNoPhysicalMonitors
	}
	d, err := Select(selector, describe(mons))
	if err != nil {
		return err
	}
	return fn(&mons[d.Index-1])
}

// ListDisplays enumerates physical monitors. Windows exposes no UUID.
func (b *DXVA2Backend) ListDisplays() (*DisplayList, error) {
	mons, err := enumPhysicalMonitors()
	if err != nil {
		return nil, err
	}
	defer destroyPhysicalMonitors(mons)

	if len(mons) == 0 {
		return nil, errNoPhysicalMonitors
	}
	displays := describe(mons)
	return &DisplayList{Displays: displays, Raw: FormatDisplays(displays)}, nil
}

// SetInput writes VCP 0x60 on the selected monitor.
func (b *DXVA2Backend) SetInput(selector string, value uint16) error {
	return withMonitor(selector, func(m *physicalMonitor) error {
		r1, _, e1 := procSetVCPFeature.Call(uintptr(m.handle), VCPInputSource, uintptr(value))
		if r1 == 0 {
			return backendErr("SetVCPFeature(VCP=0x60)", e1)
		}
		return nil
	})
}

// GetInput reads the current VCP 0x60 value of the selected monitor.
func (b *DXVA2Backend) GetInput(selector string) (uint16, error) {
	var current uint32
	err := withMonitor(selector, func(m *physicalMonitor) error {
		var vcpType, maximum uint32
		r1, _, e1 := procGetVCPFeatureAndVCPFeatureReply.Call(
			uintptr(m.handle),
			VCPInputSource,
			uintptr(unsafe.Pointer(&vcpType)),
			uintptr(unsafe.Pointer(&current)),
			uintptr(unsafe.Pointer(&maximum)),
		)
		if r1 == 0 {
			return backendErr("GetVCPFeatureAndVCPFeatureReply(VCP=0x60)", e1)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if current > 0xFFFF {
		return 0xFFFF, nil
	}
	return uint16(current), nil
}

// Doctor reports whether Dxva2 can see any physical monitor.
func (b *DXVA2Backend) Doctor() DoctorReport {
	mons, err := enumPhysicalMonitors()
	if err != nil {
		return DoctorReport{OK: false, Message: fmt.Sprintf("Failed to enumerate monitors: %v", err)}
	}
	defer destroyPhysicalMonitors(mons)

	if len(mons) == 0 {
		return DoctorReport{OK: false, Message: "No physical monitors found via Dxva2."}
	}
	return DoctorReport{
		OK:      true,
		Message: "Dxva2: OK\n\nDetected monitors:\n" + FormatDisplays(describe(mons)),
	}
}
