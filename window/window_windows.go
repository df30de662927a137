//go:build windows

package window

import (
	"fmt"
	"unsafe"
)

const supported = true

type point struct {
	X, Y int32
}

// ScreenSize returns the primary display size in pixels.
func ScreenSize() (int, int, error) {
	w, _, _ := ProcGetSystemMetrics.Call(smCXScreen)
	h, _, _ := ProcGetSystemMetrics.Call(smCYScreen)
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned an empty screen")
	}
	return int(int32(w)), int(int32(h)), nil
}

// CursorPos returns the pointer location in screen pixels.
func CursorPos() (int, int, error) {
	var pt point
	r, _, err := ProcGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return 0, 0, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return int(pt.X), int(pt.Y), nil
}

func sendInput(rec any) error {
	var ptr, size uintptr
	switch r := rec.(type) {
	case *mouseRecord:
		ptr, size = uintptr(unsafe.Pointer(r)), unsafe.Sizeof(*r)
	case *keybdRecord:
		ptr, size = uintptr(unsafe.Pointer(r)), unsafe.Sizeof(*r)
	default:
		return ErrUnsupportedEvent
	}

	n, _, err := ProcSendInput.Call(1, ptr, size)
	if n == 0 {
		return fmt.Errorf("%w: %v", ErrSendInput, err)
	}
	return nil
}
