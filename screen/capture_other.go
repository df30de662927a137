//go:build !windows

package screen

import "image"

// CaptureRect returns ErrUnsupportedPlatform.
func CaptureRect(image.Rectangle) (*image.RGBA, error) { return nil, ErrUnsupportedPlatform }

// CapturePrimary returns ErrUnsupportedPlatform.
func CapturePrimary() (*image.RGBA, error) { return nil, ErrUnsupportedPlatform }

// Monitors returns ErrUnsupportedPlatform.
func Monitors() ([]Monitor, error) { return nil, ErrUnsupportedPlatform }

// Primary returns ErrUnsupportedPlatform.
func Primary() (Monitor, error) { return Monitor{}, ErrUnsupportedPlatform }
