// Package control translates controller state into synthesized input and shell events.
package control

// EventKind tags a control event for the shell.
type EventKind int

const (
	// ToggleUIRequested asks the shell to flip UI visibility.
	ToggleUIRequested EventKind = iota + 1
	// OSKToggleRequested asks the shell to show or hide the on-screen keyboard.
	OSKToggleRequested
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case ToggleUIRequested:
		return "toggle_ui"
	case OSKToggleRequested:
		return "toggle_osk"
	default:
		return "unknown"
	}
}

// Event is a control message produced by the engine.
type Event struct {
	Kind EventKind
	// Show is meaningful for OSKToggleRequested: true asks for the keyboard to appear.
	Show bool
}

// Sink receives control events. Post must not block; it reports whether the
// event was queued.
type Sink interface {
	Post(ev Event) bool
}

// OSKProbe reports whether an on-screen keyboard window currently exists.
type OSKProbe interface {
	Present() bool
}
