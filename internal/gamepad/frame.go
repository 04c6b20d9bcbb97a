// Package gamepad reads controller state snapshots from platform backends.
package gamepad

// Buttons is a bitmask of held digital buttons using the XInput bit layout.
type Buttons uint16

const (
	// DPadUp is the d-pad up direction.
	DPadUp Buttons = 0x0001
	// DPadDown is the d-pad down direction.
	DPadDown Buttons = 0x0002
	// DPadLeft is the d-pad left direction.
	DPadLeft Buttons = 0x0004
	// DPadRight is the d-pad right direction.
	DPadRight Buttons = 0x0008
	// Start is the start/menu button.
	Start Buttons = 0x0010
	// Back is the back/view button.
	Back Buttons = 0x0020
	// LeftThumb is the left stick click.
	LeftThumb Buttons = 0x0040
	// RightThumb is the right stick click.
	RightThumb Buttons = 0x0080
	// LeftShoulder is the left bumper.
	LeftShoulder Buttons = 0x0100
	// RightShoulder is the right bumper.
	RightShoulder Buttons = 0x0200
	// Guide is the home/guide button. XInput only reports it through the undocumented API.
	Guide Buttons = 0x0400
	// A is the bottom face button (primary accept).
	A Buttons = 0x1000
	// B is the right face button (secondary cancel).
	B Buttons = 0x2000
	// X is the left face button.
	X Buttons = 0x4000
	// Y is the top face button.
	Y Buttons = 0x8000
)

// AxisMax is the largest positive stick value.
const AxisMax = 32767

// Frame is an immutable snapshot of controller state.
// Stick Y axes are positive when the stick is pushed up.
type Frame struct {
	Buttons Buttons
	LX      int16
	LY      int16
	RX      int16
	RY      int16
	LT      uint8
	RT      uint8
}

// Held reports whether every button in mask is held in the frame.
func (f Frame) Held(mask Buttons) bool {
	return mask != 0 && f.Buttons&mask == mask
}

// Pressed reports whether every button in mask is held in cur but was not
// fully held in prev.
func Pressed(prev, cur Frame, mask Buttons) bool {
	return cur.Held(mask) && !prev.Held(mask)
}
