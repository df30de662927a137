// Package mouse defines the mouse buttons, click modes and SendInput flag
// values shared by event construction and the injection backends.
package mouse

import "strings"

// MOUSEINPUT dwFlags values.
const (
	FlagMove        uint32 = 0x0001
	FlagLeftDown    uint32 = 0x0002
	FlagLeftUp      uint32 = 0x0004
	FlagRightDown   uint32 = 0x0008
	FlagRightUp     uint32 = 0x0010
	FlagMiddleDown  uint32 = 0x0020
	FlagMiddleUp    uint32 = 0x0040
	FlagWheel       uint32 = 0x0800
	FlagHWheel      uint32 = 0x1000
	FlagVirtualDesk uint32 = 0x4000
	FlagAbsolute    uint32 = 0x8000
)

// WheelDelta is one detent of a standard mouse wheel.
const WheelDelta = 120

// Button selects the mouse button a click or drag acts on.
// The Double variants are only meaningful for Click.
type Button int

const (
	Left Button = iota
	Right
	Middle
	DoubleLeft
	DoubleRight
	DoubleMiddle
)

// IsDouble reports whether b is a double-click variant.
func (b Button) IsDouble() bool {
	return b == DoubleLeft || b == DoubleRight || b == DoubleMiddle
}

// Base strips the double-click variant, e.g. DoubleRight -> Right.
func (b Button) Base() Button {
	switch b {
	case DoubleLeft:
		return Left
	case DoubleRight:
		return Right
	case DoubleMiddle:
		return Middle
	default:
		return b
	}
}

// Flags returns the press and release flags of the button.
func (b Button) Flags() (down, up uint32) {
	switch b.Base() {
	case Right:
		return FlagRightDown, FlagRightUp
	case Middle:
		return FlagMiddleDown, FlagMiddleUp
	default:
		return FlagLeftDown, FlagLeftUp
	}
}

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Middle:
		return "middle"
	case DoubleLeft:
		return "double_left"
	case DoubleRight:
		return "double_right"
	case DoubleMiddle:
		return "double_middle"
	default:
		return "unknown"
	}
}

// ParseButton parses a button name such as "left" or "double_right".
func ParseButton(s string) (Button, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "middle":
		return Middle, true
	case "double_left":
		return DoubleLeft, true
	case "double_right":
		return DoubleRight, true
	case "double_middle":
		return DoubleMiddle, true
	default:
		return Left, false
	}
}

// ClickMode selects which transitions a click emits.
type ClickMode int

const (
	DownAndUp ClickMode = iota
	Down
	Up
)

func (m ClickMode) String() string {
	switch m {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "down_and_up"
	}
}

// ParseClickMode parses "down", "up" or "down_and_up". The legacy spelling
// "up_and_down" is accepted as DownAndUp.
func ParseClickMode(s string) (ClickMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return Down, true
	case "up":
		return Up, true
	case "down_and_up", "up_and_down":
		return DownAndUp, true
	default:
		return DownAndUp, false
	}
}
