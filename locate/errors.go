package locate

import "errors"

var (
	// ErrTemplateLoad implies the reference image could not be read.
	ErrTemplateLoad = errors.New("locate: cannot load template image")

	// ErrTemplateTooLarge implies the template does not fit in the capture.
	ErrTemplateTooLarge = errors.New("locate: template larger than screen")

	// ErrInvalidConfidence implies a confidence outside [0, 1].
	ErrInvalidConfidence = errors.New("locate: confidence must be within [0, 1]")
)
