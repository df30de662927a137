// Package input models the primitive events an automation run is made of and
// turns intent-level gestures (move, click, scroll) into ordered event
// sequences with embedded wait markers.
package input

import (
	"fmt"
	"time"

	"github.com/rpdg/winauto/keyboard"
	"github.com/rpdg/winauto/mouse"
)

// Kind tags the variant held by an Event.
type Kind uint8

const (
	// KindPointer is a pointer move and/or wheel delta.
	KindPointer Kind = iota + 1
	// KindButton is a mouse button transition.
	KindButton
	// KindKey is a keyboard key transition.
	KindKey
	// KindWait is a pause during playback; it is never sent to the device.
	KindWait
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindButton:
		return "button"
	case KindKey:
		return "key"
	case KindWait:
		return "wait"
	default:
		return "invalid"
	}
}

// Event is one primitive input event or a wait marker. Only the fields of
// its Kind are meaningful.
type Event struct {
	Kind Kind

	// KindPointer. X and Y are normalized to 0..65535 when Flags has
	// mouse.FlagAbsolute.
	X, Y  int32
	Flags uint32
	Wheel int32

	// KindButton.
	Button mouse.Button

	// KindKey.
	Key keyboard.Key

	// KindButton and KindKey: release instead of press.
	Up bool

	// KindWait.
	Wait time.Duration
}

// PointerEvent builds a pointer move/wheel event.
func PointerEvent(x, y int32, flags uint32, wheel int32) Event {
	return Event{Kind: KindPointer, X: x, Y: y, Flags: flags, Wheel: wheel}
}

// ButtonEvent builds a press (up=false) or release of the base button of b.
func ButtonEvent(b mouse.Button, up bool) Event {
	return Event{Kind: KindButton, Button: b.Base(), Up: up}
}

// KeyEvent builds a key press (up=false) or release.
func KeyEvent(k keyboard.Key, up bool) Event {
	return Event{Kind: KindKey, Key: k, Up: up}
}

// WaitEvent builds a wait marker. Non-positive durations are rejected so a
// sequence never carries an empty pause.
func WaitEvent(d time.Duration) (Event, bool) {
	if d <= 0 {
		return Event{}, false
	}
	return Event{Kind: KindWait, Wait: d}, true
}

// IsWait reports whether e is a wait marker.
func (e Event) IsWait() bool { return e.Kind == KindWait }

// ButtonFlags returns the MOUSEEVENTF flag for a KindButton event.
func (e Event) ButtonFlags() uint32 {
	down, up := e.Button.Flags()
	if e.Up {
		return up
	}
	return down
}

func (e Event) String() string {
	switch e.Kind {
	case KindPointer:
		return fmt.Sprintf("pointer(%d,%d flags=0x%04X wheel=%d)", e.X, e.Y, e.Flags, e.Wheel)
	case KindButton:
		return fmt.Sprintf("button(%s %s)", e.Button, transition(e.Up))
	case KindKey:
		return fmt.Sprintf("key(0x%02X %s)", uint16(e.Key), transition(e.Up))
	case KindWait:
		return fmt.Sprintf("wait(%s)", e.Wait)
	default:
		return "invalid"
	}
}

func transition(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
