package input

import "errors"

// ErrInvalidTiming implies a negative total duration or a non-positive step.
var ErrInvalidTiming = errors.New("invalid timing: duration must be >= 0 and step > 0")
