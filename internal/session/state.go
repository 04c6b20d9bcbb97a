// Package session holds state shared between the shell and the input engine.
package session

import "sync/atomic"

// State is passed by pointer to both the shell and the engine at startup.
// Readers may observe a write up to one polling cycle late.
type State struct {
	uiVisible  atomic.Bool
	running    atomic.Bool
	padPresent atomic.Bool
}

// New returns a running state with the given initial UI visibility.
func New(uiVisible bool) *State {
	s := &State{}
	s.uiVisible.Store(uiVisible)
	s.running.Store(true)
	return s
}

// UIVisible reports whether the UI is shown.
func (s *State) UIVisible() bool {
	return s.uiVisible.Load()
}

// SetUIVisible sets UI visibility. Only the shell calls this.
func (s *State) SetUIVisible(visible bool) {
	s.uiVisible.Store(visible)
}

// ToggleUIVisible flips visibility and returns the new value.
func (s *State) ToggleUIVisible() bool {
	for {
		old := s.uiVisible.Load()
		if s.uiVisible.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Suppressed reports whether synthesized input is currently suppressed.
// Input is suppressed while the UI is visible.
func (s *State) Suppressed() bool {
	return s.uiVisible.Load()
}

// Running reports whether the process is still running.
func (s *State) Running() bool {
	return s.running.Load()
}

// Stop clears the running flag.
func (s *State) Stop() {
	s.running.Store(false)
}

// SetControllerPresent records whether the last poll produced a frame.
func (s *State) SetControllerPresent(present bool) {
	s.padPresent.Store(present)
}

// ControllerPresent reports whether the last poll produced a frame.
func (s *State) ControllerPresent() bool {
	return s.padPresent.Load()
}

// Snapshot is a read-only view of the shared state.
type Snapshot struct {
	UIVisible         bool
	Running           bool
	ControllerPresent bool
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		UIVisible:         s.uiVisible.Load(),
		Running:           s.running.Load(),
		ControllerPresent: s.padPresent.Load(),
	}
}
