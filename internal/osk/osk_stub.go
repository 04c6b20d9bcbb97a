//go:build !windows

// Package osk shows and hides the system on-screen keyboard.
package osk

// Keyboard is a no-op keyboard for platforms without an integration.
type Keyboard struct{}

// New returns a keyboard that is never present.
func New() *Keyboard {
	return &Keyboard{}
}

// Present always reports false.
func (k *Keyboard) Present() bool {
	return false
}

// Show returns ErrUnsupported.
func (k *Keyboard) Show() error {
	return ErrUnsupported
}

// Hide is a no-op because the keyboard is never present.
func (k *Keyboard) Hide() error {
	return nil
}
