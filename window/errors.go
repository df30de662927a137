package window

import "errors"

var (
	// ErrUnsupportedPlatform implies the Win32 API is not available.
	ErrUnsupportedPlatform = errors.New("window: not supported on this platform")

	// ErrSendInput implies SendInput inserted no event, typically because
	// UIPI blocked injection into a higher integrity process.
	ErrSendInput = errors.New("window: SendInput rejected the event")

	// ErrUnsupportedEvent implies the event kind cannot be sent to the OS.
	ErrUnsupportedEvent = errors.New("window: unsupported event kind")
)
