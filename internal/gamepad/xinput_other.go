//go:build !windows

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

// openXInput returns ErrUnsupported outside Windows.
func openXInput(index int) (Source, error) {
	_ = index
	return nil, ErrUnsupported
}
