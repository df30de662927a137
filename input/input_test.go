package input

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpdg/winauto/keyboard"
	"github.com/rpdg/winauto/mouse"
)

func moveFlags() uint32 { return mouse.FlagMove | mouse.FlagAbsolute }

func TestInterpolateLinearSteps(t *testing.T) {
	seq, err := Interpolate(Motion{
		From:     image.Pt(0, 0),
		To:       image.Pt(100, 50),
		Flags:    moveFlags(),
		Duration: 100 * time.Millisecond,
		Step:     5 * time.Millisecond,
	})
	require.NoError(t, err)

	// 20 steps + final snap, each followed by a wait marker.
	assert.Equal(t, 21, seq.Count(KindPointer))
	assert.Equal(t, 21, seq.Count(KindWait))
	assert.Equal(t, 105*time.Millisecond, seq.Duration())

	assert.Equal(t, PointerEvent(5, 2, moveFlags(), 0), seq[0])
	last := seq[len(seq)-2]
	assert.Equal(t, int32(100), last.X)
	assert.Equal(t, int32(50), last.Y)
	assert.True(t, seq[len(seq)-1].IsWait())
}

func TestInterpolateSnapsTruncatedPath(t *testing.T) {
	seq, err := Interpolate(Motion{
		From:     image.Pt(10, 10),
		To:       image.Pt(17, 3),
		Flags:    moveFlags(),
		Duration: 15 * time.Millisecond,
		Step:     5 * time.Millisecond,
	})
	require.NoError(t, err)

	// 7/3 and -7/3 truncate to 2 and -2, so the third step stops at (16,4).
	pointers := pointers(seq)
	require.Len(t, pointers, 4)
	assert.Equal(t, image.Pt(16, 4), image.Pt(int(pointers[2].X), int(pointers[2].Y)))
	assert.Equal(t, image.Pt(17, 3), image.Pt(int(pointers[3].X), int(pointers[3].Y)))
}

func TestInterpolateZeroCycles(t *testing.T) {
	seq, err := Interpolate(Motion{
		From:     image.Pt(1, 1),
		To:       image.Pt(300, 400),
		Wheel:    7,
		Duration: 3 * time.Millisecond,
		Step:     5 * time.Millisecond,
	})
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, int32(300), seq[0].X)
	assert.Equal(t, int32(7), seq[0].Wheel)
	assert.Equal(t, 5*time.Millisecond, seq[1].Wait)
}

func TestInterpolateInvalidTiming(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		step     time.Duration
	}{
		{"negative duration", -time.Millisecond, 5 * time.Millisecond},
		{"zero step", 100 * time.Millisecond, 0},
		{"negative step", 100 * time.Millisecond, -5 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Interpolate(Motion{To: image.Pt(10, 10), Duration: tt.duration, Step: tt.step})
			assert.ErrorIs(t, err, ErrInvalidTiming)
			assert.Empty(t, seq)
		})
	}
}

func TestInterpolateWheelTotal(t *testing.T) {
	for _, curve := range []Curve{Linear, Smooth} {
		t.Run(curve.String(), func(t *testing.T) {
			seq, err := Interpolate(Motion{
				Wheel:    1000,
				Flags:    mouse.FlagWheel,
				Duration: 30 * time.Millisecond,
				Step:     7 * time.Millisecond,
				Curve:    curve,
			})
			require.NoError(t, err)
			total := 0
			for _, ev := range pointers(seq) {
				assert.Zero(t, ev.X)
				assert.Zero(t, ev.Y)
				total += int(ev.Wheel)
			}
			assert.Equal(t, 1000, total)
		})
	}
}

func TestInterpolateSmoothIsMonotonic(t *testing.T) {
	seq, err := Interpolate(Motion{
		From:     image.Pt(0, 0),
		To:       image.Pt(1000, 0),
		Duration: 100 * time.Millisecond,
		Step:     5 * time.Millisecond,
		Curve:    Smooth,
	})
	require.NoError(t, err)
	prev := int32(-1)
	for _, ev := range pointers(seq) {
		assert.GreaterOrEqual(t, ev.X, prev)
		prev = ev.X
	}
	assert.Equal(t, int32(1000), prev)
}

func TestClickCycles(t *testing.T) {
	single := Click(mouse.Left, mouse.DownAndUp, 20*time.Millisecond)
	assert.Equal(t, 2, single.Primitives())
	assert.Equal(t, Sequence{
		ButtonEvent(mouse.Left, false),
		{Kind: KindWait, Wait: 20 * time.Millisecond},
		ButtonEvent(mouse.Left, true),
	}, single)

	double := Click(mouse.DoubleLeft, mouse.DownAndUp, 20*time.Millisecond)
	assert.Equal(t, 4, double.Primitives())
	assert.Equal(t, 2, double.Count(KindWait))
	for i, ev := range double.Clone() {
		if ev.Kind == KindButton {
			assert.Equal(t, mouse.Left, ev.Button, "event %d", i)
		}
	}
	assert.False(t, double[0].Up)
	assert.True(t, double[2].Up)
	assert.False(t, double[3].Up)
	assert.True(t, double[5].Up)
}

func TestClickModes(t *testing.T) {
	down := Click(mouse.DoubleRight, mouse.Down, 20*time.Millisecond)
	require.Len(t, down, 1)
	assert.Equal(t, mouse.FlagRightDown, down[0].ButtonFlags())

	up := Click(mouse.Middle, mouse.Up, 0)
	require.Len(t, up, 1)
	assert.Equal(t, mouse.FlagMiddleUp, up[0].ButtonFlags())

	noPause := Click(mouse.Left, mouse.DownAndUp, 0)
	assert.Equal(t, 0, noPause.Count(KindWait))
}

func TestWaitEventRejectsNonPositive(t *testing.T) {
	_, ok := WaitEvent(0)
	assert.False(t, ok)
	_, ok = WaitEvent(-time.Second)
	assert.False(t, ok)
	assert.Empty(t, Sequence(nil).Wait(0))
}

func TestAbsoluteRoundTrip(t *testing.T) {
	for _, extent := range []int{800, 1366, 1920, 2560, 3840} {
		for px := 0; px < extent; px++ {
			abs := ToAbsolute(px, extent)
			require.Equal(t, px, FromAbsolute(abs, extent), "extent=%d px=%d", extent, px)
		}
	}
	assert.Equal(t, int32(AbsoluteRange-1), ToAbsolute(1920, 1920))
	assert.Equal(t, int32(0), ToAbsolute(-5, 1920))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "key(0x0D up)", KeyEvent(keyboard.KeyEnter, true).String())
	assert.Equal(t, "button(right down)", ButtonEvent(mouse.DoubleRight, false).String())
}

func pointers(seq Sequence) []Event {
	var out []Event
	for _, ev := range seq {
		if ev.Kind == KindPointer {
			out = append(out, ev)
		}
	}
	return out
}
