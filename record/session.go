package record

import (
	"sync"

	"github.com/rpdg/winauto/input"
)

// Session is a capture buffer.
type Session struct {
	mu     sync.Mutex
	active bool
	events input.Sequence
}

// NewSession returns an active, empty session.
func NewSession() *Session {
	return &Session{active: true}
}

// Record appends events. Does nothing once the session has ended.
func (s *Session) Record(events ...input.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.events = append(s.events, events...)
	}
}

// End deactivates the session and returns the recorded events. The session
// keeps no reference to the returned slice. Calling End again returns nil.
func (s *Session) End() input.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	result := s.events
	s.events = nil
	return result
}

// Active reports whether the session still records.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Len returns the number of events recorded so far.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
