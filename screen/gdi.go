package screen

import "image"

// GDI captures the primary display. It satisfies locate.Capturer.
type GDI struct{}

// Capture grabs the primary display.
func (GDI) Capture() (image.Image, error) {
	img, err := CapturePrimary()
	if err != nil {
		return nil, err
	}
	return img, nil
}
