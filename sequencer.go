package winauto

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/mouse"
	"github.com/rpdg/winauto/record"
)

// Report summarizes a list operation.
type Report = record.Report

// Sequencer turns intent-level actions into event sequences, dispatches them
// to a Device and mirrors them into every active capture session.
type Sequencer struct {
	dev      Device
	player   *record.Player
	sleep    record.SleepFunc
	log      *zap.Logger
	defaults Defaults

	mu       sync.Mutex
	sessions []*record.Session
	current  *record.Session
}

// New creates a Sequencer driving dev.
func New(dev Device, opts ...Option) *Sequencer {
	s := &Sequencer{
		dev:      dev,
		sleep:    record.Sleep,
		log:      zap.NewNop(),
		defaults: DefaultTimings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.player = record.NewPlayer(dev, record.WithSleep(s.sleep), record.WithLogger(s.log))
	return s
}

// -----------------------------------------------------------------------------
// Display
// -----------------------------------------------------------------------------

// ScreenSize returns the primary display size in pixels.
func (s *Sequencer) ScreenSize() (int, int, error) {
	return s.dev.ScreenSize()
}

// CursorPos returns the current pointer location.
func (s *Sequencer) CursorPos() (int, int, error) {
	return s.dev.CursorPos()
}

// OnScreen reports whether (x, y) lies within the display, edges included.
func (s *Sequencer) OnScreen(x, y int) bool {
	w, h, err := s.dev.ScreenSize()
	if err != nil {
		return false
	}
	return x >= 0 && y >= 0 && x <= w && y <= h
}

// -----------------------------------------------------------------------------
// Recording
// -----------------------------------------------------------------------------

// Record starts a new capture session attached to s. Any number of sessions
// may be active at once; each receives every event emitted until it ends.
func (s *Sequencer) Record() *record.Session {
	sess := record.NewSession()

	s.mu.Lock()
	s.sessions = append(s.sessions, sess)
	s.mu.Unlock()
	return sess
}

// BeginRecord starts the default session. A previous default session that
// was not ended is discarded.
func (s *Sequencer) BeginRecord() {
	sess := s.Record()

	s.mu.Lock()
	prev := s.current
	s.current = sess
	s.mu.Unlock()

	if prev != nil {
		prev.End()
	}
}

// EndRecord ends the default session and returns what it captured. It
// returns nil when no default session is active.
func (s *Sequencer) EndRecord() input.Sequence {
	s.mu.Lock()
	sess := s.current
	s.current = nil
	s.mu.Unlock()

	if sess == nil {
		return nil
	}
	return sess.End()
}

// Recording reports whether the default session is active.
func (s *Sequencer) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

func (s *Sequencer) mirror(seq input.Sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.sessions[:0]
	for _, sess := range s.sessions {
		if !sess.Active() {
			continue
		}
		sess.Record(seq...)
		live = append(live, sess)
	}
	for i := len(live); i < len(s.sessions); i++ {
		s.sessions[i] = nil
	}
	s.sessions = live
}

// emit mirrors seq into the active sessions, then plays it. Every event is
// attempted; the returned error combines the rejected ones.
func (s *Sequencer) emit(seq input.Sequence) error {
	s.mirror(seq)
	r := s.player.Play(context.Background(), seq)
	if r.Err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, r.Err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Playback
// -----------------------------------------------------------------------------

// Wait records a wait marker when d is positive and suspends the caller for d.
func (s *Sequencer) Wait(d time.Duration) {
	s.mirror(input.Sequence(nil).Wait(d))
	_ = s.sleep(context.Background(), d)
}

// WaitDefault waits for the default wait duration.
func (s *Sequencer) WaitDefault() {
	s.Wait(s.defaults.Wait)
}

// Execute replays seq verbatim. See ExecuteContext.
func (s *Sequencer) Execute(seq input.Sequence) Report {
	return s.ExecuteContext(context.Background(), seq)
}

// ExecuteContext replays seq verbatim: wait markers suspend playback, every
// other event is sent in order. A rejected event does not stop the rest.
// Replayed events are not captured by active sessions.
func (s *Sequencer) ExecuteContext(ctx context.Context, seq input.Sequence) Report {
	s.log.Debug("executing sequence",
		zap.Int("events", seq.Primitives()),
		zap.Duration("duration", seq.Duration()))

	r := s.player.Play(ctx, seq)
	if !r.OK() {
		s.log.Warn("sequence playback incomplete",
			zap.Int("completed", r.Completed),
			zap.Int("failed", r.Failed),
			zap.Bool("aborted", r.Aborted))
	}
	return r
}

// -----------------------------------------------------------------------------
// Pointer
// -----------------------------------------------------------------------------

// MoveTo moves the pointer to (x, y) in Duration/Step interpolated steps and
// lands exactly on the target. The far edges are not addressable: x == w or
// y == h, which OnScreen accepts, land on the last pixel (w-1, h-1), the same
// clamp the OS applies to the cursor.
func (s *Sequencer) MoveTo(x, y int, opts ...Timing) error {
	t := s.timing(s.defaults.ClickInterval, opts)
	if t.duration < 0 || t.step <= 0 {
		return ErrInvalidTiming
	}
	cx, cy, err := s.dev.CursorPos()
	if err != nil {
		return fmt.Errorf("cursor position: %w", err)
	}
	return s.moveAbs(image.Pt(cx, cy), image.Pt(x, y), t)
}

// Move moves the pointer by (dx, dy) relative to its current location.
func (s *Sequencer) Move(dx, dy int, opts ...Timing) error {
	t := s.timing(s.defaults.ClickInterval, opts)
	if t.duration < 0 || t.step <= 0 {
		return ErrInvalidTiming
	}
	cx, cy, err := s.dev.CursorPos()
	if err != nil {
		return fmt.Errorf("cursor position: %w", err)
	}
	return s.moveAbs(image.Pt(cx, cy), image.Pt(cx+dx, cy+dy), t)
}

func (s *Sequencer) moveAbs(from, to image.Point, t timing) error {
	w, h, err := s.dev.ScreenSize()
	if err != nil {
		return fmt.Errorf("screen size: %w", err)
	}

	seq, err := input.Interpolate(input.Motion{
		From:     image.Pt(int(input.ToAbsolute(from.X, w)), int(input.ToAbsolute(from.Y, h))),
		To:       image.Pt(int(input.ToAbsolute(to.X, w)), int(input.ToAbsolute(to.Y, h))),
		Flags:    mouse.FlagMove | mouse.FlagAbsolute,
		Duration: t.duration,
		Step:     t.step,
		Curve:    t.curve,
	})
	if err != nil {
		return err
	}

	s.log.Debug("move",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("curve", t.curve),
		zap.Int("events", len(seq)))
	return s.emit(seq)
}

// Scroll spins the vertical wheel by amount (positive is away from the user)
// spread over the motion timing. The pointer does not move.
func (s *Sequencer) Scroll(amount int, opts ...Timing) error {
	return s.wheel(mouse.FlagWheel, amount, opts)
}

// HScroll spins the horizontal wheel by amount.
func (s *Sequencer) HScroll(amount int, opts ...Timing) error {
	return s.wheel(mouse.FlagHWheel, amount, opts)
}

func (s *Sequencer) wheel(flag uint32, amount int, opts []Timing) error {
	t := s.timing(s.defaults.ClickInterval, opts)
	seq, err := input.Interpolate(input.Motion{
		Wheel:    amount,
		Flags:    flag,
		Duration: t.duration,
		Step:     t.step,
		Curve:    t.curve,
	})
	if err != nil {
		return err
	}

	s.log.Debug("scroll", zap.Int("amount", amount), zap.Uint32("flags", flag))
	return s.emit(seq)
}

// Click clicks b at the current pointer location. Double variants click
// twice. WithMode restricts the click to the press or the release.
func (s *Sequencer) Click(b mouse.Button, opts ...Timing) error {
	t := s.timing(s.defaults.ClickInterval, opts)
	s.log.Debug("click", zap.Stringer("button", b), zap.Stringer("mode", t.mode))
	return s.emit(input.Click(b, t.mode, t.interval))
}

// ClickAt moves to (x, y) and clicks b there. The click is skipped when the
// move fails.
func (s *Sequencer) ClickAt(x, y int, b mouse.Button, opts ...Timing) error {
	if err := s.MoveTo(x, y, opts...); err != nil {
		return err
	}
	return s.Click(b, opts...)
}

// ClickDown presses b at the current location.
func (s *Sequencer) ClickDown(b mouse.Button) error {
	return s.Click(b, WithMode(mouse.Down))
}

// ClickUp releases b at the current location.
func (s *Sequencer) ClickUp(b mouse.Button) error {
	return s.Click(b, WithMode(mouse.Up))
}

// ClickDownAt moves to (x, y) and presses b.
func (s *Sequencer) ClickDownAt(x, y int, b mouse.Button) error {
	return s.ClickAt(x, y, b, WithMode(mouse.Down))
}

// ClickUpAt moves to (x, y) and releases b.
func (s *Sequencer) ClickUpAt(x, y int, b mouse.Button) error {
	return s.ClickAt(x, y, b, WithMode(mouse.Up))
}

// DragTo presses b, moves to (x, y) and releases b. Double-click variants
// are rejected before anything is sent. A failing step stops the drag; if
// the move fails the button is still released.
func (s *Sequencer) DragTo(x, y int, b mouse.Button, opts ...Timing) error {
	if b.IsDouble() {
		return fmt.Errorf("%w: drag with %s", ErrUnsupportedButton, b)
	}
	return s.drag(b, func() error { return s.MoveTo(x, y, opts...) })
}

// Drag is DragTo with a target relative to the current pointer location.
func (s *Sequencer) Drag(dx, dy int, b mouse.Button, opts ...Timing) error {
	if b.IsDouble() {
		return fmt.Errorf("%w: drag with %s", ErrUnsupportedButton, b)
	}
	return s.drag(b, func() error { return s.Move(dx, dy, opts...) })
}

func (s *Sequencer) drag(b mouse.Button, move func() error) error {
	if err := s.ClickDown(b); err != nil {
		return err
	}
	if err := move(); err != nil {
		// Don't leave the button held.
		if upErr := s.ClickUp(b); upErr != nil {
			s.log.Warn("release after failed drag", zap.Stringer("button", b), zap.Error(upErr))
		}
		return err
	}
	return s.ClickUp(b)
}
