package record

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rpdg/winauto/input"
)

// Dispatcher sends one primitive event to the live input subsystem.
type Dispatcher interface {
	Send(ev input.Event) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(ev input.Event) error

// Send calls f.
func (f DispatcherFunc) Send(ev input.Event) error { return f(ev) }

// SleepFunc suspends the caller for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Player replays event sequences.
type Player struct {
	dispatcher Dispatcher
	sleep      SleepFunc
	log        *zap.Logger
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithSleep replaces the wait implementation.
func WithSleep(fn SleepFunc) PlayerOption {
	return func(p *Player) {
		if fn != nil {
			p.sleep = fn
		}
	}
}

// WithLogger sets the logger used for send failures.
func WithLogger(l *zap.Logger) PlayerOption {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPlayer creates a player sending events to d.
func NewPlayer(d Dispatcher, opts ...PlayerOption) *Player {
	p := &Player{
		dispatcher: d,
		sleep:      Sleep,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play sends seq in order. Wait markers suspend playback for their duration.
// A failed send is recorded in the report and playback continues with the
// next event; only ctx cancellation stops it early.
func (p *Player) Play(ctx context.Context, seq input.Sequence) Report {
	var r Report
	for i, ev := range seq {
		if err := ctx.Err(); err != nil {
			r.Aborted = true
			r.Err = multierr.Append(r.Err, err)
			return r
		}

		if ev.IsWait() {
			if err := p.sleep(ctx, ev.Wait); err != nil {
				r.Aborted = true
				r.Err = multierr.Append(r.Err, err)
				return r
			}
			continue
		}

		if err := p.dispatcher.Send(ev); err != nil {
			p.log.Warn("input event rejected",
				zap.Int("index", i),
				zap.Stringer("event", ev),
				zap.Error(err))
			r.Fail(fmt.Errorf("event %d %s: %w", i, ev, err))
			continue
		}
		r.Completed++
	}
	return r
}
