package screen

import "errors"

var (
	// ErrUnsupportedPlatform implies GDI capture is not available.
	ErrUnsupportedPlatform = errors.New("screen: capture not supported on this platform")

	// ErrNotDPIAware implies the process is not Per-Monitor DPI aware, so a
	// capture would not match cursor coordinates.
	ErrNotDPIAware = errors.New("screen: process is not Per-Monitor DPI aware; call window.EnablePerMonitorDPI first")

	// ErrTooLarge implies the requested area exceeds the capture size limit.
	ErrTooLarge = errors.New("screen: capture area too large")

	// ErrUnsupportedFormat implies Save was given an unknown file extension.
	ErrUnsupportedFormat = errors.New("screen: unsupported image format")

	// ErrNoPrimary implies no monitor reported itself as primary.
	ErrNoPrimary = errors.New("screen: no primary monitor")
)
