//go:build !sdl

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

// openSDL returns ErrUnsupported when built without the sdl tag.
func openSDL(index int) (Source, error) {
	_ = index
	return nil, ErrUnsupported
}
