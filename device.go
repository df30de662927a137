package winauto

import "github.com/rpdg/winauto/input"

// Device is the live input subsystem a Sequencer drives.
type Device interface {
	// ScreenSize returns the primary display size in pixels.
	ScreenSize() (w, h int, err error)
	// CursorPos returns the pointer location in screen pixels.
	CursorPos() (x, y int, err error)
	// Send dispatches one primitive event. Wait markers are never sent.
	Send(ev input.Event) error
}
