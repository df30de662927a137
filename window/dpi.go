//go:build windows

package window

import (
	"fmt"
	"unsafe"
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// dpiAwarenessPerMonitor is DPI_AWARENESS_PER_MONITOR_AWARE.
const dpiAwarenessPerMonitor = 2

// EnablePerMonitorDPI makes the process Per-Monitor DPI aware (V2) so that
// metrics, cursor positions and captures all use physical pixels.
func EnablePerMonitorDPI() error {
	if ProcSetProcessDpiAwarenessCtx.Find() != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not found")
	}
	r, _, _ := ProcSetProcessDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		if IsPerMonitorDPIAware() {
			// Already set, e.g. by the manifest.
			return nil
		}
		return fmt.Errorf("SetProcessDpiAwarenessContext failed")
	}
	return nil
}

// IsPerMonitorDPIAware reports whether the calling thread runs with
// per-monitor DPI awareness (V1 or V2).
func IsPerMonitorDPIAware() bool {
	if ProcGetThreadDpiAwarenessCtx.Find() != nil || ProcGetAwarenessFromDpiAwareCtx.Find() != nil {
		return false
	}
	ctx, _, _ := ProcGetThreadDpiAwarenessCtx.Call()
	awareness, _, _ := ProcGetAwarenessFromDpiAwareCtx.Call(ctx)
	return int32(awareness) == dpiAwarenessPerMonitor
}

// DPIForMonitor returns the effective DPI of a monitor handle.
func DPIForMonitor(hmonitor uintptr) (dpiX, dpiY uint32, err error) {
	if ProcGetDpiForMonitor.Find() != nil {
		return 96, 96, fmt.Errorf("GetDpiForMonitor not found")
	}
	var dx, dy uint32
	// MDT_EFFECTIVE_DPI = 0
	r, _, _ := ProcGetDpiForMonitor.Call(hmonitor, 0, uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
	if r != 0 {
		return 96, 96, fmt.Errorf("GetDpiForMonitor failed: 0x%08X", r)
	}
	return dx, dy, nil
}
