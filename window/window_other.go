//go:build !windows

package window

const supported = false

// ScreenSize returns ErrUnsupportedPlatform.
func ScreenSize() (int, int, error) { return 0, 0, ErrUnsupportedPlatform }

// CursorPos returns ErrUnsupportedPlatform.
func CursorPos() (int, int, error) { return 0, 0, ErrUnsupportedPlatform }

// EnablePerMonitorDPI returns ErrUnsupportedPlatform.
func EnablePerMonitorDPI() error { return ErrUnsupportedPlatform }

// IsPerMonitorDPIAware reports false.
func IsPerMonitorDPIAware() bool { return false }

func sendInput(any) error { return ErrUnsupportedPlatform }
