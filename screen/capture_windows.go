//go:build windows

package screen

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/rpdg/winauto/window"
)

// GDI Constants & Types
const (
	srcCopy      = 0x00CC0020
	dibRGBColors = 0
	biRGB        = 0
)

type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

// CaptureRect captures r, given in virtual desktop coordinates, using the
// CreateDIBSection method. The returned image has its origin at (0, 0).
//
// Prerequisites:
// The process MUST be Per-Monitor DPI Aware (V1 or V2).
func CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	if !window.IsPerMonitorDPIAware() {
		return nil, ErrNotDPIAware
	}
	if err := checkSize(r); err != nil {
		return nil, err
	}
	width, height := int32(r.Dx()), int32(r.Dy())

	// GetDC(0) returns the DC for the entire virtual screen
	hScreenDC, _, _ := window.ProcGetDC.Call(0)
	if hScreenDC == 0 {
		return nil, fmt.Errorf("GetDC failed")
	}
	defer window.ProcReleaseDC.Call(0, hScreenDC)

	hMemDC, _, _ := window.ProcCreateCompatibleDC.Call(hScreenDC)
	if hMemDC == 0 {
		return nil, fmt.Errorf("CreateCompatibleDC failed")
	}
	defer window.ProcDeleteDC.Call(hMemDC)

	// Top-down DIB (negative height) so (0,0) is top-left.
	bmi := bitmapInfoHeader{
		BiSize:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		BiWidth:       width,
		BiHeight:      -height,
		BiPlanes:      1,
		BiBitCount:    32, // BGRA
		BiCompression: biRGB,
	}

	var ppvBits uintptr
	hBitmap, _, _ := window.ProcCreateDIBSection.Call(
		hMemDC,
		uintptr(unsafe.Pointer(&bmi)),
		dibRGBColors,
		uintptr(unsafe.Pointer(&ppvBits)),
		0, 0,
	)
	if hBitmap == 0 {
		return nil, fmt.Errorf("CreateDIBSection failed")
	}
	defer window.ProcDeleteObject.Call(hBitmap)

	oldObj, _, _ := window.ProcSelectObject.Call(hMemDC, hBitmap)
	if oldObj == 0 {
		return nil, fmt.Errorf("SelectObject failed")
	}
	// Restore old object before deleting MemDC
	defer window.ProcSelectObject.Call(hMemDC, oldObj)

	// hBitmap is selected in hMemDC, so this writes straight into ppvBits.
	ret, _, _ := window.ProcBitBlt.Call(
		hMemDC,
		0, 0, uintptr(width), uintptr(height),
		hScreenDC,
		uintptr(int32(r.Min.X)), uintptr(int32(r.Min.Y)),
		srcCopy,
	)
	if ret == 0 {
		return nil, fmt.Errorf("BitBlt failed")
	}

	// The DIB is freed on return, so the pixels must be copied out.
	src := unsafe.Slice((*byte)(unsafe.Pointer(ppvBits)), int(width)*int(height)*4)
	return bgraToRGBA(src, int(width), int(height)), nil
}

// CapturePrimary captures the whole primary display.
func CapturePrimary() (*image.RGBA, error) {
	mon, err := Primary()
	if err != nil {
		// Fall back to the metrics the input device normalizes against.
		w, h, merr := window.ScreenSize()
		if merr != nil {
			return nil, fmt.Errorf("%w (%v)", err, merr)
		}
		return CaptureRect(image.Rect(0, 0, w, h))
	}
	return CaptureRect(mon.Bounds)
}
