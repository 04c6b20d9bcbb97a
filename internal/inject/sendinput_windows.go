//go:build windows

// Package inject synthesizes keyboard and pointer input on the host.
package inject

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// WinInjector injects mouse and keyboard input using SendInput.
type WinInjector struct{}

// NewInjector returns a Windows input injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32, data uint32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:        dx,
			Dy:        dy,
			MouseData: data,
			DwFlags:   flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return fmt.Errorf("SendInput mouse: %w", syscall.Errno(win.GetLastError()))
	}
	return nil
}

// sendKeyboardInput dispatches a single keyboard input event.
func sendKeyboardInput(key win.KEYBDINPUT) error {
	input := win.KEYBD_INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki:   key,
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return fmt.Errorf("SendInput keyboard: %w", syscall.Errno(win.GetLastError()))
	}
	return nil
}
