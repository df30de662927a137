package winauto

import (
	"time"

	"go.uber.org/zap"

	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/mouse"
	"github.com/rpdg/winauto/record"
)

// Defaults holds the timings used when an operation is called without
// overrides.
type Defaults struct {
	MoveDuration  time.Duration
	MoveStep      time.Duration
	ClickInterval time.Duration
	PressInterval time.Duration
	Wait          time.Duration
	Curve         input.Curve
}

// DefaultTimings returns 100ms moves in 5ms steps, 20ms click and press
// intervals and a 1s wait.
func DefaultTimings() Defaults {
	return Defaults{
		MoveDuration:  100 * time.Millisecond,
		MoveStep:      5 * time.Millisecond,
		ClickInterval: 20 * time.Millisecond,
		PressInterval: 20 * time.Millisecond,
		Wait:          time.Second,
		Curve:         input.Linear,
	}
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSleep replaces the function used for waits, mostly for tests.
func WithSleep(fn record.SleepFunc) Option {
	return func(s *Sequencer) {
		if fn != nil {
			s.sleep = fn
		}
	}
}

// WithDefaults replaces the default timings.
func WithDefaults(d Defaults) Option {
	return func(s *Sequencer) {
		s.defaults = d
	}
}

// Timing overrides the default timing of a single call.
type Timing func(*timing)

type timing struct {
	duration time.Duration
	step     time.Duration
	interval time.Duration
	mode     mouse.ClickMode
	curve    input.Curve
}

// WithDuration sets the total duration of a motion or scroll.
func WithDuration(d time.Duration) Timing {
	return func(t *timing) { t.duration = d }
}

// WithStep sets the interval between interpolated steps.
func WithStep(d time.Duration) Timing {
	return func(t *timing) { t.step = d }
}

// WithInterval sets the hold time between press and release.
func WithInterval(d time.Duration) Timing {
	return func(t *timing) { t.interval = d }
}

// WithMode selects press-only, release-only or full clicks.
func WithMode(m mouse.ClickMode) Timing {
	return func(t *timing) { t.mode = m }
}

// WithCurve selects the interpolation curve.
func WithCurve(c input.Curve) Timing {
	return func(t *timing) { t.curve = c }
}

func (s *Sequencer) timing(interval time.Duration, opts []Timing) timing {
	t := timing{
		duration: s.defaults.MoveDuration,
		step:     s.defaults.MoveStep,
		interval: interval,
		mode:     mouse.DownAndUp,
		curve:    s.defaults.Curve,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
