//go:build windows

// Package inject synthesizes keyboard and pointer input on the host.
package inject

import "github.com/lxn/win"

// MoveRel moves the cursor by a relative offset in mickeys.
func (w *WinInjector) MoveRel(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	return sendMouseInput(win.MOUSEEVENTF_MOVE, int32(dx), int32(dy), 0)
}

// Wheel scrolls by the provided delta; positive scrolls away from the user.
func (w *WinInjector) Wheel(delta int) error {
	if delta == 0 {
		return nil
	}
	return sendMouseInput(win.MOUSEEVENTF_WHEEL, 0, 0, uint32(int32(delta)))
}
