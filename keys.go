package winauto

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rpdg/winauto/input"
	"github.com/rpdg/winauto/keyboard"
)

// -----------------------------------------------------------------------------
// Keyboard
// -----------------------------------------------------------------------------

// KeyDown presses k.
func (s *Sequencer) KeyDown(k keyboard.Key) error {
	return s.emit(input.Sequence{input.KeyEvent(k, false)})
}

// KeyUp releases k.
func (s *Sequencer) KeyUp(k keyboard.Key) error {
	return s.emit(input.Sequence{input.KeyEvent(k, true)})
}

// Press presses k, waits for the press interval and releases it. The wait
// and release are skipped when the press fails.
func (s *Sequencer) Press(k keyboard.Key, opts ...Timing) error {
	t := s.timing(s.defaults.PressInterval, opts)
	if err := s.KeyDown(k); err != nil {
		return err
	}
	s.Wait(t.interval)
	return s.KeyUp(k)
}

// PressHotkey holds keys down in order for the press interval, then releases
// them in reverse order. When a press fails the keys already held are
// released; a failed release does not stop the remaining ones.
func (s *Sequencer) PressHotkey(keys ...keyboard.Key) error {
	for i, k := range keys {
		if err := s.KeyDown(k); err != nil {
			return multierr.Append(err, s.release(keys[:i]))
		}
	}
	if len(keys) > 0 {
		s.Wait(s.defaults.PressInterval)
	}
	return s.release(keys)
}

// release lets go of held in reverse order.
func (s *Sequencer) release(held []keyboard.Key) error {
	var err error
	for i := len(held) - 1; i >= 0; i-- {
		if upErr := s.KeyUp(held[i]); upErr != nil {
			err = multierr.Append(err, fmt.Errorf("release %s: %w", keyboard.Name(held[i]), upErr))
		}
	}
	return err
}

// PressKeys presses every key in order. A failed press does not stop the
// remaining ones.
func (s *Sequencer) PressKeys(keys []keyboard.Key, opts ...Timing) Report {
	var r Report
	for _, k := range keys {
		if err := s.Press(k, opts...); err != nil {
			r.Fail(fmt.Errorf("key %s: %w", keyboard.Name(k), err))
			continue
		}
		r.Completed++
	}
	return r
}

// PressNames resolves each name through the key table and presses it. Names
// missing from the table fail with ErrUnknownKey and are never sent; the
// other names are still pressed.
func (s *Sequencer) PressNames(names []string, opts ...Timing) Report {
	var r Report
	for _, name := range names {
		k, ok := keyboard.Lookup(name)
		if !ok {
			s.log.Warn("unknown key name", zap.String("name", name))
			r.Fail(fmt.Errorf("%w: %q", ErrUnknownKey, name))
			continue
		}
		if err := s.Press(k, opts...); err != nil {
			r.Fail(fmt.Errorf("key %q: %w", name, err))
			continue
		}
		r.Completed++
	}
	return r
}

// Type types text on a US layout, holding Shift where the character needs
// it. It stops at the first character that cannot be typed or sent.
func (s *Sequencer) Type(text string, opts ...Timing) error {
	for _, r := range text {
		k, shifted, ok := keyboard.LookupRune(r)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedKey, r)
		}

		if !shifted {
			if err := s.Press(k, opts...); err != nil {
				return err
			}
			continue
		}

		if err := s.KeyDown(keyboard.KeyShift); err != nil {
			return err
		}
		if err := s.Press(k, opts...); err != nil {
			_ = s.KeyUp(keyboard.KeyShift)
			return err
		}
		if err := s.KeyUp(keyboard.KeyShift); err != nil {
			return err
		}
	}
	return nil
}
