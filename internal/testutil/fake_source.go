// Package testutil provides fakes shared by package tests.
package testutil

import (
	"sync"

	"github.com/frudas24/padnexus/internal/gamepad"
)

// FakeSource replays a scripted sequence of poll results.
// Once the script is exhausted the last entry repeats.
type FakeSource struct {
	mu     sync.Mutex
	script []PollResult
	Polls  int
	Closed bool
}

// PollResult is one scripted Poll outcome.
type PollResult struct {
	Frame gamepad.Frame
	Err   error
}

// Ensure FakeSource implements the interface.
var _ gamepad.Source = (*FakeSource)(nil)

// NewFakeSource returns a source that yields frames in order.
func NewFakeSource(frames ...gamepad.Frame) *FakeSource {
	s := &FakeSource{}
	for _, f := range frames {
		s.script = append(s.script, PollResult{Frame: f})
	}
	return s
}

// Push appends a frame to the script.
func (s *FakeSource) Push(f gamepad.Frame) {
	s.mu.Lock()
	s.script = append(s.script, PollResult{Frame: f})
	s.mu.Unlock()
}

// PushErr appends a failed read to the script.
func (s *FakeSource) PushErr(err error) {
	s.mu.Lock()
	s.script = append(s.script, PollResult{Err: err})
	s.mu.Unlock()
}

// Poll returns the next scripted result.
func (s *FakeSource) Poll() (gamepad.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.script) == 0 {
		s.Polls++
		return gamepad.Frame{}, gamepad.ErrUnavailable
	}
	idx := s.Polls
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	s.Polls++
	r := s.script[idx]
	return r.Frame, r.Err
}

// Close marks the source closed.
func (s *FakeSource) Close() error {
	s.mu.Lock()
	s.Closed = true
	s.mu.Unlock()
	return nil
}
