// Package robot drives input and capture through robotgo instead of raw
// SendInput. The robotgo calls sit behind Driver so the event translation
// can be exercised without a display; robot/native provides the real one.
package robot

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/mouse"
)

var (
	// ErrUnmappedKey implies the virtual-key code has no robotgo name.
	ErrUnmappedKey = errors.New("robot: key has no robotgo name")

	// ErrUnsupportedEvent implies the event cannot be expressed with robotgo.
	ErrUnsupportedEvent = errors.New("robot: unsupported event")
)

// Driver is the subset of robotgo the device needs.
type Driver interface {
	ScreenSize() (w, h int)
	Location() (x, y int)
	Move(x, y int)
	MoveRelative(dx, dy int)
	Toggle(button string, up bool) error
	KeyToggle(key string, up bool) error
	Scroll(x, y int)
	Capture() (image.Image, error)
}

// Device adapts a Driver to the sequencer's device contract. Absolute
// pointer events are mapped back to pixels; wheel deltas are accumulated
// and forwarded in whole notches.
type Device struct {
	drv Driver

	mu     sync.Mutex
	wheel  int
	hwheel int
}

// New creates a Device on top of drv.
func New(drv Driver) *Device {
	return &Device{drv: drv}
}

// ScreenSize returns the primary display size.
func (d *Device) ScreenSize() (int, int, error) {
	w, h := d.drv.ScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("robot: invalid screen size %dx%d", w, h)
	}
	return w, h, nil
}

// CursorPos returns the pointer location.
func (d *Device) CursorPos() (int, int, error) {
	x, y := d.drv.Location()
	return x, y, nil
}

// Capture grabs the screen. It satisfies locate.Capturer.
func (d *Device) Capture() (image.Image, error) {
	img, err := d.drv.Capture()
	if err != nil {
		return nil, fmt.Errorf("robot: capture: %w", err)
	}
	return img, nil
}

// Send performs ev.
func (d *Device) Send(ev input.Event) error {
	switch ev.Kind {
	case input.KindPointer:
		return d.pointer(ev)
	case input.KindButton:
		return d.drv.Toggle(buttonName(ev.Button), ev.Up)
	case input.KindKey:
		name, ok := keyName(ev.Key)
		if !ok {
			return fmt.Errorf("%w: 0x%02X", ErrUnmappedKey, uint16(ev.Key))
		}
		return d.drv.KeyToggle(name, ev.Up)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, ev.Kind)
	}
}

func (d *Device) pointer(ev input.Event) error {
	switch {
	case ev.Flags&mouse.FlagWheel != 0:
		if n := d.notches(&d.wheel, ev.Wheel); n != 0 {
			d.drv.Scroll(0, n)
		}
	case ev.Flags&mouse.FlagHWheel != 0:
		if n := d.notches(&d.hwheel, ev.Wheel); n != 0 {
			d.drv.Scroll(n, 0)
		}
	}

	if ev.Flags&mouse.FlagMove == 0 {
		return nil
	}
	if ev.Flags&mouse.FlagAbsolute == 0 {
		d.drv.MoveRelative(int(ev.X), int(ev.Y))
		return nil
	}
	w, h, err := d.ScreenSize()
	if err != nil {
		return err
	}
	d.drv.Move(input.FromAbsolute(ev.X, w), input.FromAbsolute(ev.Y, h))
	return nil
}

// notches adds delta to *acc and takes out the whole notches.
func (d *Device) notches(acc *int, delta int32) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	*acc += int(delta)
	n := *acc / mouse.WheelDelta
	*acc -= n * mouse.WheelDelta
	return n
}

func buttonName(b mouse.Button) string {
	switch b.Base() {
	case mouse.Right:
		return "right"
	case mouse.Middle:
		return "center"
	default:
		return "left"
	}
}
