//go:build windows

// Package inject synthesizes keyboard and pointer input on the host.
package inject

import (
	"fmt"

	"github.com/lxn/win"
)

// virtualKeys maps engine keys to virtual-key codes.
var virtualKeys = map[Key]uint16{
	KeyEnter:  win.VK_RETURN,
	KeyEscape: win.VK_ESCAPE,
	KeyMeta:   win.VK_LWIN,
}

// PressKey sends a key down followed by a key up.
func (w *WinInjector) PressKey(k Key) error {
	vk, ok := virtualKeys[k]
	if !ok {
		return fmt.Errorf("no virtual key for %s", k)
	}
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: vk}); err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk, DwFlags: win.KEYEVENTF_KEYUP})
}
