package input

import "time"

// Sequence is an ordered list of events. Positions carry no identity and
// duplicates are allowed.
type Sequence []Event

// Wait appends a wait marker when d is positive.
func (s Sequence) Wait(d time.Duration) Sequence {
	if ev, ok := WaitEvent(d); ok {
		return append(s, ev)
	}
	return s
}

// Count returns the number of events of kind k.
func (s Sequence) Count(k Kind) int {
	n := 0
	for _, ev := range s {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

// Primitives returns the number of events that reach the device.
func (s Sequence) Primitives() int {
	return len(s) - s.Count(KindWait)
}

// Duration sums the wait markers, i.e. the minimum playback time.
func (s Sequence) Duration() time.Duration {
	var d time.Duration
	for _, ev := range s {
		if ev.Kind == KindWait {
			d += ev.Wait
		}
	}
	return d
}

// Clone returns a copy that shares no backing array with s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
