package window

import "github.com/rpdg/winauto/input"

// Device drives the desktop through SendInput. Pointer coordinates are
// absolute, normalized against the primary display.
type Device struct{}

// NewDevice returns a SendInput device. It fails on platforms without the
// Win32 input API.
func NewDevice() (*Device, error) {
	if !supported {
		return nil, ErrUnsupportedPlatform
	}
	return &Device{}, nil
}

// ScreenSize returns the primary display size in pixels.
func (d *Device) ScreenSize() (int, int, error) {
	return ScreenSize()
}

// CursorPos returns the pointer location in screen pixels.
func (d *Device) CursorPos() (int, int, error) {
	return CursorPos()
}

// Send dispatches ev with a single SendInput call.
func (d *Device) Send(ev input.Event) error {
	rec, err := encode(ev)
	if err != nil {
		return err
	}
	return sendInput(rec)
}
