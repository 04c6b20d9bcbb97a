//go:build linux

// Package inject synthesizes keyboard and pointer input on the host.
package inject

import (
	"errors"
	"fmt"

	"github.com/bendahl/uinput"
)

const uinputPath = "/dev/uinput"

// linuxKeys maps engine keys to evdev key codes.
var linuxKeys = map[Key]int{
	KeyEnter:  uinput.KeyEnter,
	KeyEscape: uinput.KeyEsc,
	KeyMeta:   uinput.KeyLeftmeta,
}

// UinputInjector injects input through virtual uinput devices.
type UinputInjector struct {
	keyboard uinput.Keyboard
	mouse    uinput.Mouse
}

// NewInjector creates a virtual keyboard and mouse.
func NewInjector() (Injector, error) {
	kbd, err := uinput.CreateKeyboard(uinputPath, []byte("padnexus-keyboard"))
	if err != nil {
		return nil, fmt.Errorf("create uinput keyboard: %w", err)
	}
	mouse, err := uinput.CreateMouse(uinputPath, []byte("padnexus-mouse"))
	if err != nil {
		_ = kbd.Close()
		return nil, fmt.Errorf("create uinput mouse: %w", err)
	}
	return &UinputInjector{keyboard: kbd, mouse: mouse}, nil
}

// PressKey sends a key down followed by a key up.
func (u *UinputInjector) PressKey(k Key) error {
	code, ok := linuxKeys[k]
	if !ok {
		return fmt.Errorf("no evdev key for %s", k)
	}
	return u.keyboard.KeyPress(code)
}

// MoveRel moves the pointer by a relative offset.
func (u *UinputInjector) MoveRel(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	return u.mouse.Move(int32(dx), int32(dy))
}

// Wheel scrolls vertically; positive scrolls up.
func (u *UinputInjector) Wheel(delta int) error {
	if delta == 0 {
		return nil
	}
	return u.mouse.Wheel(false, int32(delta))
}

// Close destroys the virtual devices.
func (u *UinputInjector) Close() error {
	return errors.Join(u.keyboard.Close(), u.mouse.Close())
}
