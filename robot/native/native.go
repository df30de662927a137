// Package native implements robot.Driver with robotgo.
package native

import (
	"image"

	"github.com/go-vgo/robotgo"
)

// Driver calls straight into robotgo.
type Driver struct{}

func (Driver) ScreenSize() (int, int) { return robotgo.GetScreenSize() }

func (Driver) Location() (int, int) { return robotgo.Location() }

func (Driver) Move(x, y int) { robotgo.Move(x, y) }

func (Driver) MoveRelative(dx, dy int) { robotgo.MoveRelative(dx, dy) }

func (Driver) Toggle(button string, up bool) error {
	if up {
		return robotgo.Toggle(button, "up")
	}
	return robotgo.Toggle(button)
}

func (Driver) KeyToggle(key string, up bool) error {
	if up {
		return robotgo.KeyToggle(key, "up")
	}
	return robotgo.KeyToggle(key, "down")
}

func (Driver) Scroll(x, y int) { robotgo.Scroll(x, y) }

func (Driver) Capture() (image.Image, error) { return robotgo.CaptureImg() }
