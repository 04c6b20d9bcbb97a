//go:build sdl

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

var sdlButtons = []struct {
	button sdl.GameControllerButton
	mask   Buttons
}{
	{sdl.CONTROLLER_BUTTON_A, A},
	{sdl.CONTROLLER_BUTTON_B, B},
	{sdl.CONTROLLER_BUTTON_X, X},
	{sdl.CONTROLLER_BUTTON_Y, Y},
	{sdl.CONTROLLER_BUTTON_BACK, Back},
	{sdl.CONTROLLER_BUTTON_GUIDE, Guide},
	{sdl.CONTROLLER_BUTTON_START, Start},
	{sdl.CONTROLLER_BUTTON_LEFTSTICK, LeftThumb},
	{sdl.CONTROLLER_BUTTON_RIGHTSTICK, RightThumb},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, LeftShoulder},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, RightShoulder},
	{sdl.CONTROLLER_BUTTON_DPAD_UP, DPadUp},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, DPadDown},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, DPadLeft},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, DPadRight},
}

// sdlSource polls an SDL GameController, reopening it after detach.
type sdlSource struct {
	mu    sync.Mutex
	index int
	pad   *sdl.GameController
}

// openSDL initialises the SDL game controller subsystem.
func openSDL(index int) (Source, error) {
	if err := sdl.Init(sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	return &sdlSource{index: index}, nil
}

// Poll refreshes controller state and returns a snapshot.
func (s *sdlSource) Poll() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sdl.GameControllerUpdate()
	if s.pad != nil && !s.pad.Attached() {
		s.pad.Close()
		s.pad = nil
	}
	if s.pad == nil {
		if s.index >= sdl.NumJoysticks() || !sdl.IsGameController(s.index) {
			return Frame{}, ErrUnavailable
		}
		s.pad = sdl.GameControllerOpen(s.index)
		if s.pad == nil {
			return Frame{}, ErrUnavailable
		}
	}

	var f Frame
	for _, b := range sdlButtons {
		if s.pad.Button(b.button) != 0 {
			f.Buttons |= b.mask
		}
	}
	// SDL reports Y axes down-positive.
	f.LX = s.pad.Axis(sdl.CONTROLLER_AXIS_LEFTX)
	f.LY = invertAxis(s.pad.Axis(sdl.CONTROLLER_AXIS_LEFTY))
	f.RX = s.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTX)
	f.RY = invertAxis(s.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTY))
	f.LT = sdlTrigger(s.pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT))
	f.RT = sdlTrigger(s.pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT))
	return f, nil
}

// Close releases the controller and the SDL subsystem.
func (s *sdlSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pad != nil {
		s.pad.Close()
		s.pad = nil
	}
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
	return nil
}

// sdlTrigger maps SDL's 0-32767 trigger range to 0-255.
func sdlTrigger(v int16) uint8 {
	if v <= 0 {
		return 0
	}
	return uint8(int(v) >> 7)
}
