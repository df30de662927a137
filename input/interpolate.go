package input

import (
	"image"
	"math"
	"time"
)

// Curve selects how intermediate steps are spaced between source and target.
type Curve int

const (
	// Linear advances by the same integer delta every step.
	Linear Curve = iota
	// Smooth eases in and out (cubic).
	Smooth
)

func (c Curve) String() string {
	if c == Smooth {
		return "smooth"
	}
	return "linear"
}

// Motion describes one interpolated gesture.
type Motion struct {
	From, To image.Point
	// Wheel is the total wheel delta spread over the steps.
	Wheel int
	// Flags is applied to every pointer event of the motion.
	Flags    uint32
	Duration time.Duration
	Step     time.Duration
	Curve    Curve
}

// Interpolate expands m into Duration/Step pointer events, each followed by a
// wait marker of Step, plus a final event placed exactly on the target so
// that integer truncation never leaves the pointer short of it. The wheel
// channel follows the same scheme: the final event carries whatever the
// steps did not.
func Interpolate(m Motion) (Sequence, error) {
	if m.Duration < 0 || m.Step <= 0 {
		return nil, ErrInvalidTiming
	}
	cycles := int(m.Duration / m.Step)

	seq := make(Sequence, 0, 2*cycles+2)
	pos := m.From
	sent := 0

	if cycles > 0 {
		switch m.Curve {
		case Smooth:
			for i := 1; i <= cycles; i++ {
				f := easeInOutCubic(float64(i) / float64(cycles))
				next := image.Point{
					X: m.From.X + int(math.Round(float64(m.To.X-m.From.X)*f)),
					Y: m.From.Y + int(math.Round(float64(m.To.Y-m.From.Y)*f)),
				}
				total := int(math.Round(float64(m.Wheel) * f))
				seq = append(seq, PointerEvent(int32(next.X), int32(next.Y), m.Flags, int32(total-sent)))
				seq = seq.Wait(m.Step)
				sent = total
			}
		default:
			dx := (m.To.X - m.From.X) / cycles
			dy := (m.To.Y - m.From.Y) / cycles
			dw := m.Wheel / cycles
			for i := 0; i < cycles; i++ {
				pos.X += dx
				pos.Y += dy
				sent += dw
				seq = append(seq, PointerEvent(int32(pos.X), int32(pos.Y), m.Flags, int32(dw)))
				seq = seq.Wait(m.Step)
			}
		}
	}

	seq = append(seq, PointerEvent(int32(m.To.X), int32(m.To.Y), m.Flags, int32(m.Wheel-sent)))
	seq = seq.Wait(m.Step)
	return seq, nil
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
