// Package osk shows and hides the system on-screen keyboard.
package osk

import "errors"

// ErrUnsupported is returned where no on-screen keyboard integration exists.
var ErrUnsupported = errors.New("on-screen keyboard not supported on this platform")

// Toggle shows the keyboard when show is true and hides it otherwise.
// Showing an already visible keyboard or hiding an absent one is a no-op.
func (k *Keyboard) Toggle(show bool) error {
	if show == k.Present() {
		return nil
	}
	if show {
		return k.Show()
	}
	return k.Hide()
}
