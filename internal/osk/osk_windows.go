//go:build windows

// Package osk shows and hides the system on-screen keyboard.
package osk

import (
	"fmt"
	"syscall"

	"github.com/lxn/win"
)

const (
	windowClass = "OSKMainClass"
	executable  = "osk.exe"
)

// Keyboard drives the Windows on-screen keyboard (osk.exe).
type Keyboard struct{}

// New returns the Windows on-screen keyboard controller.
func New() *Keyboard {
	return &Keyboard{}
}

// Present reports whether the keyboard window exists.
func (k *Keyboard) Present() bool {
	return findWindow() != 0
}

// Show launches osk.exe.
func (k *Keyboard) Show() error {
	verb, err := syscall.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := syscall.UTF16PtrFromString(executable)
	if err != nil {
		return err
	}
	if !win.ShellExecute(0, verb, file, nil, nil, win.SW_SHOWNORMAL) {
		return fmt.Errorf("ShellExecute %s: %w", executable, syscall.Errno(win.GetLastError()))
	}
	return nil
}

// Hide asks the keyboard window to close.
func (k *Keyboard) Hide() error {
	hwnd := findWindow()
	if hwnd == 0 {
		return nil
	}
	win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
	return nil
}

// findWindow looks up the keyboard window by class name.
func findWindow() win.HWND {
	class, err := syscall.UTF16PtrFromString(windowClass)
	if err != nil {
		return 0
	}
	return win.FindWindow(class, nil)
}
