package winauto

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/keyboard"
	"github.com/rpdg/winauto/mouse"
)

type fakeDevice struct {
	w, h   int
	x, y   int
	sent   input.Sequence
	reject func(input.Event) bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{w: 1920, h: 1080}
}

func (d *fakeDevice) ScreenSize() (int, int, error) { return d.w, d.h, nil }

func (d *fakeDevice) CursorPos() (int, int, error) { return d.x, d.y, nil }

func (d *fakeDevice) Send(ev input.Event) error {
	if d.reject != nil && d.reject(ev) {
		return errors.New("rejected by device")
	}
	d.sent = append(d.sent, ev)
	if ev.Kind == input.KindPointer && ev.Flags&mouse.FlagAbsolute != 0 {
		d.x = input.FromAbsolute(ev.X, d.w)
		d.y = input.FromAbsolute(ev.Y, d.h)
	}
	return nil
}

func (d *fakeDevice) kinds(k input.Kind) input.Sequence {
	var out input.Sequence
	for _, ev := range d.sent {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

type fakeClock struct {
	slept []time.Duration
}

func (c *fakeClock) sleep(ctx context.Context, d time.Duration) error {
	if d > 0 {
		c.slept = append(c.slept, d)
	}
	return ctx.Err()
}

func newTestSequencer(t *testing.T) (*Sequencer, *fakeDevice, *fakeClock) {
	t.Helper()
	dev := newFakeDevice()
	clock := &fakeClock{}
	return New(dev, WithSleep(clock.sleep)), dev, clock
}

func TestOnScreen(t *testing.T) {
	s, _, _ := newTestSequencer(t)

	for _, p := range [][2]int{{0, 0}, {1920, 1080}, {960, 540}, {0, 1080}} {
		assert.True(t, s.OnScreen(p[0], p[1]), "%v", p)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {1921, 10}, {10, 1081}} {
		assert.False(t, s.OnScreen(p[0], p[1]), "%v", p)
	}
}

func TestMoveToArrivesExactly(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		opts []Timing
	}{
		{"defaults", 100, 100, nil},
		{"truncating step", 1333, 777, []Timing{WithDuration(100 * time.Millisecond), WithStep(7 * time.Millisecond)}},
		{"zero cycles", 50, 60, []Timing{WithDuration(2 * time.Millisecond), WithStep(5 * time.Millisecond)}},
		{"smooth", 1919, 1079, []Timing{WithCurve(input.Smooth)}},
		{"origin", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dev, _ := newTestSequencer(t)
			dev.x, dev.y = 800, 400

			require.NoError(t, s.MoveTo(tt.x, tt.y, tt.opts...))

			x, y, err := s.CursorPos()
			require.NoError(t, err)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestMoveToFarEdgeLandsOnLastPixel(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	require.True(t, s.OnScreen(1920, 1080))

	require.NoError(t, s.MoveTo(1920, 1080))
	assert.Equal(t, 1919, dev.x)
	assert.Equal(t, 1079, dev.y)
}

func TestMoveToStepsAndWaits(t *testing.T) {
	s, dev, clock := newTestSequencer(t)

	require.NoError(t, s.MoveTo(100, 100))

	// 100ms / 5ms steps plus the final snap.
	assert.Len(t, dev.kinds(input.KindPointer), 21)
	assert.Len(t, clock.slept, 21)
	for _, ev := range dev.sent {
		assert.Equal(t, mouse.FlagMove|mouse.FlagAbsolute, ev.Flags)
	}
}

func TestMoveRelative(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.x, dev.y = 300, 300

	require.NoError(t, s.Move(-50, 25))
	assert.Equal(t, 250, dev.x)
	assert.Equal(t, 325, dev.y)
}

func TestMoveToInvalidTiming(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	s.BeginRecord()

	err := s.MoveTo(10, 10, WithDuration(-1*time.Millisecond))
	assert.ErrorIs(t, err, ErrInvalidTiming)

	err = s.MoveTo(10, 10, WithStep(0))
	assert.ErrorIs(t, err, ErrInvalidTiming)

	err = s.Move(10, 10, WithStep(-time.Millisecond))
	assert.ErrorIs(t, err, ErrInvalidTiming)

	assert.Empty(t, dev.sent)
	assert.Empty(t, s.EndRecord())
}

func TestRecordAndReplay(t *testing.T) {
	s, dev, _ := newTestSequencer(t)

	s.BeginRecord()
	require.True(t, s.Recording())
	require.NoError(t, s.MoveTo(100, 100))
	require.NoError(t, s.MoveTo(200, 100))
	recorded := s.EndRecord()
	assert.False(t, s.Recording())

	// What was captured is exactly what was dispatched, plus the waits.
	var primitives input.Sequence
	for _, ev := range recorded {
		if !ev.IsWait() {
			primitives = append(primitives, ev)
		}
	}
	assert.Equal(t, dev.sent, primitives)

	dev.x, dev.y = 5, 5
	dev.sent = nil
	r := s.Execute(recorded)
	require.True(t, r.OK())
	assert.Equal(t, recorded.Primitives(), r.Completed)
	assert.Equal(t, 200, dev.x)
	assert.Equal(t, 100, dev.y)
}

func TestBeginRecordDiscardsPrevious(t *testing.T) {
	s, _, _ := newTestSequencer(t)

	s.BeginRecord()
	require.NoError(t, s.KeyDown(keyboard.KeyA))
	s.BeginRecord()
	require.NoError(t, s.KeyUp(keyboard.KeyA))

	got := s.EndRecord()
	require.Len(t, got, 1)
	assert.True(t, got[0].Up)
	assert.Nil(t, s.EndRecord())
}

func TestNestedSessions(t *testing.T) {
	s, _, _ := newTestSequencer(t)

	outer := s.Record()
	require.NoError(t, s.KeyDown(keyboard.KeyCtrl))

	inner := s.Record()
	require.NoError(t, s.Press(keyboard.KeyC))
	innerSeq := inner.End()

	require.NoError(t, s.KeyUp(keyboard.KeyCtrl))
	outerSeq := outer.End()

	assert.Equal(t, 2, innerSeq.Primitives())
	assert.Equal(t, 1, innerSeq.Count(input.KindWait))
	assert.Equal(t, 4, outerSeq.Primitives())
	assert.Equal(t, innerSeq, outerSeq[1:4])
}

func TestClickCycles(t *testing.T) {
	s, dev, clock := newTestSequencer(t)

	require.NoError(t, s.Click(mouse.Left))
	assert.Len(t, dev.kinds(input.KindButton), 2)
	assert.Len(t, clock.slept, 1)

	dev.sent, clock.slept = nil, nil
	require.NoError(t, s.Click(mouse.DoubleLeft))
	buttons := dev.kinds(input.KindButton)
	require.Len(t, buttons, 4)
	assert.Len(t, clock.slept, 2)
	for i, ev := range buttons {
		assert.Equal(t, mouse.Left, ev.Button)
		assert.Equal(t, i%2 == 1, ev.Up, "down must precede up")
	}
}

func TestClickDownUp(t *testing.T) {
	s, dev, clock := newTestSequencer(t)

	require.NoError(t, s.ClickDown(mouse.Right))
	require.NoError(t, s.ClickUp(mouse.Right))

	require.Len(t, dev.sent, 2)
	assert.False(t, dev.sent[0].Up)
	assert.True(t, dev.sent[1].Up)
	assert.Empty(t, clock.slept)
}

func TestClickAt(t *testing.T) {
	s, dev, _ := newTestSequencer(t)

	require.NoError(t, s.ClickAt(640, 480, mouse.Middle, WithInterval(0)))
	assert.Equal(t, 640, dev.x)
	assert.Equal(t, 480, dev.y)

	buttons := dev.kinds(input.KindButton)
	require.Len(t, buttons, 2)
	assert.Equal(t, mouse.Middle, buttons[0].Button)
	assert.Equal(t, input.KindButton, dev.sent[len(dev.sent)-1].Kind)
}

func TestClickAtInvalidTimingSkipsClick(t *testing.T) {
	s, dev, _ := newTestSequencer(t)

	err := s.ClickAt(10, 10, mouse.Left, WithStep(0))
	assert.ErrorIs(t, err, ErrInvalidTiming)
	assert.Empty(t, dev.sent)
}

func TestDragTo(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.x, dev.y = 10, 10

	require.NoError(t, s.DragTo(400, 300, mouse.Left))

	require.NotEmpty(t, dev.sent)
	first, last := dev.sent[0], dev.sent[len(dev.sent)-1]
	assert.Equal(t, input.ButtonEvent(mouse.Left, false), first)
	assert.Equal(t, input.ButtonEvent(mouse.Left, true), last)
	assert.Equal(t, 400, dev.x)
	assert.Equal(t, 300, dev.y)
}

func TestDragRejectsDoubleButtons(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	s.BeginRecord()

	for _, b := range []mouse.Button{mouse.DoubleLeft, mouse.DoubleRight, mouse.DoubleMiddle} {
		assert.ErrorIs(t, s.DragTo(10, 10, b), ErrUnsupportedButton)
		assert.ErrorIs(t, s.Drag(10, 10, b), ErrUnsupportedButton)
	}
	assert.Empty(t, dev.sent)
	assert.Empty(t, s.EndRecord())
}

func TestDragReleasesButtonWhenMoveFails(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.reject = func(ev input.Event) bool { return ev.Kind == input.KindPointer }

	err := s.Drag(50, 50, mouse.Right)
	require.ErrorIs(t, err, ErrSendFailed)

	buttons := dev.kinds(input.KindButton)
	require.Len(t, buttons, 2)
	assert.False(t, buttons[0].Up)
	assert.True(t, buttons[1].Up)
}

func TestDragStopsWhenPressFails(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.reject = func(ev input.Event) bool { return ev.Kind == input.KindButton }

	err := s.DragTo(50, 50, mouse.Left)
	require.ErrorIs(t, err, ErrSendFailed)
	assert.Empty(t, dev.kinds(input.KindPointer))
}

func TestGeneratedListReportsFailures(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	n := 0
	dev.reject = func(ev input.Event) bool {
		n++
		return n == 3
	}

	err := s.MoveTo(100, 100)
	require.ErrorIs(t, err, ErrSendFailed)
	// Remaining events are still attempted, so the pointer arrives anyway.
	assert.Equal(t, 100, dev.x)
	assert.Equal(t, 100, dev.y)
}

func TestScroll(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.x, dev.y = 70, 80

	require.NoError(t, s.Scroll(-3*mouse.WheelDelta))
	total := 0
	for _, ev := range dev.sent {
		assert.Equal(t, mouse.FlagWheel, ev.Flags)
		total += int(ev.Wheel)
	}
	assert.Equal(t, -3*mouse.WheelDelta, total)
	assert.Equal(t, 70, dev.x)
	assert.Equal(t, 80, dev.y)

	dev.sent = nil
	require.NoError(t, s.HScroll(7, WithDuration(10*time.Millisecond), WithStep(3*time.Millisecond)))
	total = 0
	for _, ev := range dev.sent {
		assert.Equal(t, mouse.FlagHWheel, ev.Flags)
		total += int(ev.Wheel)
	}
	assert.Equal(t, 7, total)

	assert.ErrorIs(t, s.Scroll(1, WithStep(0)), ErrInvalidTiming)
}

func TestPress(t *testing.T) {
	s, dev, clock := newTestSequencer(t)

	require.NoError(t, s.Press(keyboard.KeyEnter, WithInterval(30*time.Millisecond)))
	assert.Equal(t, input.Sequence{
		input.KeyEvent(keyboard.KeyEnter, false),
		input.KeyEvent(keyboard.KeyEnter, true),
	}, dev.sent)
	assert.Equal(t, []time.Duration{30 * time.Millisecond}, clock.slept)
}

func TestPressAbortsWhenKeyDownFails(t *testing.T) {
	s, dev, clock := newTestSequencer(t)
	dev.reject = func(ev input.Event) bool { return !ev.Up }

	err := s.Press(keyboard.KeyA)
	require.ErrorIs(t, err, ErrSendFailed)
	assert.Empty(t, dev.sent)
	assert.Empty(t, clock.slept)
}

func TestPressHotkey(t *testing.T) {
	s, dev, clock := newTestSequencer(t)

	require.NoError(t, s.PressHotkey(keyboard.KeyCtrl, keyboard.KeyShift, keyboard.KeyEsc))
	assert.Equal(t, input.Sequence{
		input.KeyEvent(keyboard.KeyCtrl, false),
		input.KeyEvent(keyboard.KeyShift, false),
		input.KeyEvent(keyboard.KeyEsc, false),
		input.KeyEvent(keyboard.KeyEsc, true),
		input.KeyEvent(keyboard.KeyShift, true),
		input.KeyEvent(keyboard.KeyCtrl, true),
	}, dev.sent)
	assert.Equal(t, []time.Duration{20 * time.Millisecond}, clock.slept)

	require.NoError(t, s.PressHotkey())
}

func TestPressHotkeyReleasesHeldKeysOnFailure(t *testing.T) {
	s, dev, clock := newTestSequencer(t)
	dev.reject = func(ev input.Event) bool { return ev.Key == keyboard.KeyEsc && !ev.Up }

	err := s.PressHotkey(keyboard.KeyCtrl, keyboard.KeyShift, keyboard.KeyEsc)
	require.ErrorIs(t, err, ErrSendFailed)
	assert.Equal(t, input.Sequence{
		input.KeyEvent(keyboard.KeyCtrl, false),
		input.KeyEvent(keyboard.KeyShift, false),
		input.KeyEvent(keyboard.KeyShift, true),
		input.KeyEvent(keyboard.KeyCtrl, true),
	}, dev.sent)
	assert.Empty(t, clock.slept)
}

func TestPressHotkeyReleasesRemainingAfterFailedRelease(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.reject = func(ev input.Event) bool { return ev.Key == keyboard.KeyShift && ev.Up }

	err := s.PressHotkey(keyboard.KeyCtrl, keyboard.KeyShift)
	require.ErrorIs(t, err, ErrSendFailed)
	require.Len(t, dev.sent, 3)
	assert.Equal(t, input.KeyEvent(keyboard.KeyCtrl, true), dev.sent[2])
}

func TestPressKeysAttemptsAll(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	dev.reject = func(ev input.Event) bool { return ev.Key == keyboard.KeyB }

	r := s.PressKeys([]keyboard.Key{keyboard.KeyA, keyboard.KeyB, keyboard.KeyC})

	assert.False(t, r.OK())
	assert.False(t, r.Aborted)
	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 1, r.Failed)
	assert.ErrorIs(t, r.Err, ErrSendFailed)
	assert.Len(t, dev.sent, 4)
}

func TestPressNames(t *testing.T) {
	s, dev, _ := newTestSequencer(t)

	r := s.PressNames([]string{"a", "no-such-key", "enter"})

	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 1, r.Failed)
	assert.ErrorIs(t, r.Err, ErrUnknownKey)
	require.Len(t, dev.sent, 4)
	assert.Equal(t, keyboard.KeyA, dev.sent[0].Key)
	assert.Equal(t, keyboard.KeyEnter, dev.sent[2].Key)
}

func TestWait(t *testing.T) {
	s, dev, clock := newTestSequencer(t)
	s.BeginRecord()

	s.Wait(250 * time.Millisecond)
	s.Wait(0)
	s.WaitDefault()

	got := s.EndRecord()
	require.Len(t, got, 2)
	assert.Equal(t, 250*time.Millisecond, got[0].Wait)
	assert.Equal(t, time.Second, got[1].Wait)
	assert.Equal(t, []time.Duration{250 * time.Millisecond, time.Second}, clock.slept)
	assert.Empty(t, dev.sent)
}

func TestType(t *testing.T) {
	s, dev, _ := newTestSequencer(t)

	require.NoError(t, s.Type("Hi", WithInterval(0)))
	assert.Equal(t, input.Sequence{
		input.KeyEvent(keyboard.KeyShift, false),
		input.KeyEvent(keyboard.KeyH, false),
		input.KeyEvent(keyboard.KeyH, true),
		input.KeyEvent(keyboard.KeyShift, true),
		input.KeyEvent(keyboard.KeyI, false),
		input.KeyEvent(keyboard.KeyI, true),
	}, dev.sent)

	assert.ErrorIs(t, s.Type("é"), ErrUnsupportedKey)
}

func TestExecuteContextCancelled(t *testing.T) {
	s, dev, _ := newTestSequencer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq := input.Sequence{input.KeyEvent(keyboard.KeyA, false)}
	r := s.ExecuteContext(ctx, seq)

	assert.True(t, r.Aborted)
	assert.ErrorIs(t, r.Err, context.Canceled)
	assert.Empty(t, dev.sent)
}

func TestExecuteIsNotRecorded(t *testing.T) {
	s, _, _ := newTestSequencer(t)
	s.BeginRecord()

	r := s.Execute(input.Sequence{input.KeyEvent(keyboard.KeyA, false)})
	require.True(t, r.OK())
	assert.Empty(t, s.EndRecord())
}
