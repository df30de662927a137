// Package screen captures the desktop into Go images for template matching.
//
// Captures use a top-down 32-bit DIB section and are converted to RGBA with
// an opaque alpha channel. The process should be Per-Monitor DPI aware (see
// window.EnablePerMonitorDPI) so that captured pixels line up with cursor
// coordinates.
package screen

import "image"

// Monitor represents a physical display device in virtual desktop
// coordinates. Bounds can have negative coordinates for displays left of or
// above the primary one.
type Monitor struct {
	Handle   uintptr
	Bounds   image.Rectangle
	WorkArea image.Rectangle // Excludes taskbar
	Primary  bool
	DPI      uint32
}
