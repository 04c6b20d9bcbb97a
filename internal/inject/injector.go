// Package inject synthesizes keyboard and pointer input on the host.
package inject

import "errors"

// ErrUnsupported indicates input synthesis is not available on this platform.
var ErrUnsupported = errors.New("input injection is not supported on this platform")

// Key identifies a key the engine can press.
type Key int

const (
	// KeyEnter is Return/Enter.
	KeyEnter Key = iota + 1
	// KeyEscape is Escape.
	KeyEscape
	// KeyMeta is the left Windows/Super key.
	KeyMeta
)

// String returns the key name used in logs.
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyMeta:
		return "meta"
	default:
		return "unknown"
	}
}

// Injector defines the input operations used by the translation engine.
type Injector interface {
	// PressKey sends a momentary key press: down immediately followed by up.
	PressKey(k Key) error
	// MoveRel moves the pointer by a relative offset.
	MoveRel(dx, dy int) error
	// Wheel scrolls vertically; positive scrolls up.
	Wheel(delta int) error
}
