package screen

import (
	"fmt"
	"image"
)

// maxCaptureBytes limits a single capture to about 500MB of BGRA pixels.
const maxCaptureBytes = 500 * 1024 * 1024

func checkSize(r image.Rectangle) error {
	if r.Empty() {
		return fmt.Errorf("%w: empty rectangle %v", ErrTooLarge, r)
	}
	if int64(r.Dx())*int64(r.Dy())*4 > maxCaptureBytes {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, r.Dx(), r.Dy())
	}
	return nil
}

// bgraToRGBA copies a top-down BGRA buffer into a new RGBA image. Alpha is
// forced to opaque since DWM can leave transparent pixels in a capture.
func bgraToRGBA(src []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dst := img.Pix
	n := w * h * 4
	for i := 0; i < n; i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = 255
	}
	return img
}
