//go:build windows

package window

import "golang.org/x/sys/windows"

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	ProcGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	ProcGetCursorPos     = user32.NewProc("GetCursorPos")
	ProcSendInput        = user32.NewProc("SendInput")

	ProcGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	ProcEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	ProcMonitorFromRect     = user32.NewProc("MonitorFromRect")

	ProcSetProcessDpiAwarenessCtx   = user32.NewProc("SetProcessDpiAwarenessContext")
	ProcGetThreadDpiAwarenessCtx    = user32.NewProc("GetThreadDpiAwarenessContext")
	ProcGetAwarenessFromDpiAwareCtx = user32.NewProc("GetAwarenessFromDpiAwarenessContext")
	ProcGetDpiForMonitor            = shcore.NewProc("GetDpiForMonitor")

	ProcGetDC              = user32.NewProc("GetDC")
	ProcReleaseDC          = user32.NewProc("ReleaseDC")
	ProcCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	ProcDeleteDC           = gdi32.NewProc("DeleteDC")
	ProcCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	ProcSelectObject       = gdi32.NewProc("SelectObject")
	ProcDeleteObject       = gdi32.NewProc("DeleteObject")
	ProcBitBlt             = gdi32.NewProc("BitBlt")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)
