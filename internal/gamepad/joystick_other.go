//go:build !linux

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

// openJoystick returns ErrUnsupported outside Linux.
func openJoystick(device string) (Source, error) {
	_ = device
	return nil, ErrUnsupported
}
