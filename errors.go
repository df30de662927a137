package winauto

import (
	"errors"

	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/keyboard"
)

var (
	// ErrInvalidTiming implies a negative duration or a non-positive step was
	// requested. No event is generated.
	ErrInvalidTiming = input.ErrInvalidTiming

	// ErrUnsupportedButton implies the button variant is not valid for the
	// operation, e.g. a double click passed to a drag.
	ErrUnsupportedButton = errors.New("unsupported button for operation")

	// ErrUnknownKey implies a symbolic key name is not in the key table.
	ErrUnknownKey = keyboard.ErrUnknownKey

	// ErrUnsupportedKey implies the character cannot be mapped to a key.
	ErrUnsupportedKey = errors.New("unsupported key or character")

	// ErrSendFailed implies the input device rejected one or more events.
	ErrSendFailed = errors.New("input dispatch failed")

	// ErrUnsupportedPlatform implies the device is not available on this OS.
	ErrUnsupportedPlatform = errors.New("input device not supported on this platform")
)
