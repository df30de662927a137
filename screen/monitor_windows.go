//go:build windows

package screen

import (
	"image"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/rpdg/winauto/window"
)

const (
	monitorInfoPrimary      = 1 // MONITORINFOF_PRIMARY
	monitorDefaultToPrimary = 1 // MONITOR_DEFAULTTOPRIMARY
)

type monitorInfoExW struct {
	Size    uint32
	Monitor windows.Rect
	Work    windows.Rect
	Flags   uint32
	Device  [32]uint16
}

func rect(r windows.Rect) image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

// The runtime never frees callbacks, so a single one is shared by every
// enumeration. enumMu serializes enumerations and guards enumOut.
var (
	enumOnce sync.Once
	enumCb   uintptr
	enumMu   sync.Mutex
	enumOut  []Monitor
)

func enumCallback() uintptr {
	enumOnce.Do(func() {
		enumCb = windows.NewCallback(func(hMonitor, hdcMonitor, lprcMonitor, dwData uintptr) uintptr {
			if mon, ok := monitorInfo(hMonitor); ok {
				enumOut = append(enumOut, mon)
			}
			return 1
		})
	})
	return enumCb
}

func monitorInfo(h uintptr) (Monitor, bool) {
	var mi monitorInfoExW
	mi.Size = uint32(unsafe.Sizeof(mi))

	ret, _, _ := window.ProcGetMonitorInfoW.Call(h, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return Monitor{}, false
	}
	mon := Monitor{
		Handle:   h,
		Bounds:   rect(mi.Monitor),
		WorkArea: rect(mi.Work),
		Primary:  mi.Flags&monitorInfoPrimary != 0,
		DPI:      96,
	}
	if dpi, _, err := window.DPIForMonitor(h); err == nil {
		mon.DPI = dpi
	}
	return mon, true
}

// Monitors returns a list of all active monitors.
func Monitors() ([]Monitor, error) {
	cb := enumCallback()

	enumMu.Lock()
	defer enumMu.Unlock()

	enumOut = nil
	ret, _, err := window.ProcEnumDisplayMonitors.Call(0, 0, cb, 0)
	monitors := enumOut
	enumOut = nil
	if ret == 0 {
		return nil, err
	}
	return monitors, nil
}

// Primary returns the primary monitor without enumerating the others.
func Primary() (Monitor, error) {
	// The primary monitor always contains the origin.
	origin := windows.Rect{Right: 1, Bottom: 1}
	h, _, _ := window.ProcMonitorFromRect.Call(uintptr(unsafe.Pointer(&origin)), monitorDefaultToPrimary)
	if h != 0 {
		if mon, ok := monitorInfo(h); ok && mon.Primary {
			return mon, nil
		}
	}

	monitors, err := Monitors()
	if err != nil {
		return Monitor{}, err
	}
	return primaryOf(monitors)
}
