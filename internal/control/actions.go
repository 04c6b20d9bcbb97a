// Package control translates controller state into synthesized input and shell events.
package control

import "github.com/frudas24/padnexus/internal/inject"

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActKey presses and releases a key.
	ActKey ActionType = "key"
	// ActMove moves the pointer relatively.
	ActMove ActionType = "move"
	// ActScroll scrolls the wheel.
	ActScroll ActionType = "scroll"
)

// Action describes a normalized input operation to apply.
type Action struct {
	Type  ActionType
	Key   inject.Key
	DX    int
	DY    int
	Delta int
}
