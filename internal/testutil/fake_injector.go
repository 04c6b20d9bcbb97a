// Package testutil provides fakes shared by package tests.
package testutil

import (
	"sync"

	"github.com/frudas24/padnexus/internal/inject"
)

// Call records a single injected action.
type Call struct {
	Name  string
	Key   inject.Key
	X     int
	Y     int
	Delta int
}

// FakeInjector implements inject.Injector and records calls for tests.
type FakeInjector struct {
	mu    sync.Mutex
	Calls []Call
	// Err is returned from every call when set.
	Err error
}

// Ensure FakeInjector implements the interface.
var _ inject.Injector = (*FakeInjector)(nil)

// PressKey records a momentary key press.
func (f *FakeInjector) PressKey(k inject.Key) error {
	f.record(Call{Name: "PressKey", Key: k})
	return f.Err
}

// MoveRel records a relative move.
func (f *FakeInjector) MoveRel(dx, dy int) error {
	f.record(Call{Name: "MoveRel", X: dx, Y: dy})
	return f.Err
}

// Wheel records a wheel delta.
func (f *FakeInjector) Wheel(delta int) error {
	f.record(Call{Name: "Wheel", Delta: delta})
	return f.Err
}

// Snapshot returns a copy of the recorded calls.
func (f *FakeInjector) Snapshot() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.Calls))
	copy(out, f.Calls)
	return out
}

// Reset clears recorded calls.
func (f *FakeInjector) Reset() {
	f.mu.Lock()
	f.Calls = nil
	f.mu.Unlock()
}

// Count returns how many calls have the given name.
func (f *FakeInjector) Count(name string) int {
	n := 0
	for _, c := range f.Snapshot() {
		if c.Name == name {
			n++
		}
	}
	return n
}

// record appends a call under the lock.
func (f *FakeInjector) record(c Call) {
	f.mu.Lock()
	f.Calls = append(f.Calls, c)
	f.mu.Unlock()
}
