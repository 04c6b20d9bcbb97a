//go:build windows

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const defaultBackend = BackendXInput

// errDeviceNotConnected is ERROR_DEVICE_NOT_CONNECTED.
const errDeviceNotConnected = 1167

var xinputDLLs = []string{"xinput1_4.dll", "xinput9_1_0.dll"}

type xinputGamepad struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

type xinputState struct {
	PacketNumber uint32
	Gamepad      xinputGamepad
}

// xinputSource polls one XInput user slot.
type xinputSource struct {
	index    uint32
	getState *windows.LazyProc
}

// openXInput loads XInputGetState and binds a user slot (0-3).
func openXInput(index int) (Source, error) {
	if index < 0 || index > 3 {
		return nil, fmt.Errorf("xinput index %d out of range 0-3", index)
	}
	var lastErr error
	for _, name := range xinputDLLs {
		proc := windows.NewLazySystemDLL(name).NewProc("XInputGetState")
		if err := proc.Find(); err != nil {
			lastErr = err
			continue
		}
		return &xinputSource{index: uint32(index), getState: proc}, nil
	}
	return nil, fmt.Errorf("load XInputGetState: %w", lastErr)
}

// Poll reads the current XInput state.
func (s *xinputSource) Poll() (Frame, error) {
	var state xinputState
	ret, _, _ := s.getState.Call(uintptr(s.index), uintptr(unsafe.Pointer(&state)))
	switch ret {
	case 0:
	case errDeviceNotConnected:
		return Frame{}, ErrUnavailable
	default:
		return Frame{}, fmt.Errorf("XInputGetState returned %d: %w", ret, ErrUnavailable)
	}
	g := state.Gamepad
	return Frame{
		Buttons: Buttons(g.Buttons),
		LX:      g.ThumbLX,
		LY:      g.ThumbLY,
		RX:      g.ThumbRX,
		RY:      g.ThumbRY,
		LT:      g.LeftTrigger,
		RT:      g.RightTrigger,
	}, nil
}

// Close is a no-op; XInput holds no per-slot handle.
func (s *xinputSource) Close() error {
	return nil
}
