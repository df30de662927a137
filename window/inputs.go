package window

import (
	"fmt"

	"github.com/rpdg/winauto/input"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	keyEventKeyUp = 0x0002
)

// mouseInput mirrors MOUSEINPUT.
type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// mouseRecord and keybdRecord are the two INPUT layouts SendInput accepts.
// The keyboard union member is smaller, so it is padded to the same size.
type mouseRecord struct {
	Type uint32
	Mi   mouseInput
}

type keybdRecord struct {
	Type uint32
	Ki   keybdInput
	_    [8]byte
}

// encode converts ev into the INPUT record SendInput expects. It returns
// either a *mouseRecord or a *keybdRecord.
func encode(ev input.Event) (any, error) {
	switch ev.Kind {
	case input.KindPointer:
		return &mouseRecord{
			Type: inputMouse,
			Mi: mouseInput{
				Dx:        ev.X,
				Dy:        ev.Y,
				MouseData: uint32(ev.Wheel),
				Flags:     ev.Flags,
			},
		}, nil
	case input.KindButton:
		return &mouseRecord{
			Type: inputMouse,
			Mi:   mouseInput{Flags: ev.ButtonFlags()},
		}, nil
	case input.KindKey:
		var flags uint32
		if ev.Up {
			flags = keyEventKeyUp
		}
		return &keybdRecord{
			Type: inputKeyboard,
			Ki:   keybdInput{Vk: uint16(ev.Key), Flags: flags},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEvent, ev.Kind)
	}
}
