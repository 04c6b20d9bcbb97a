// Package gamepad reads controller state snapshots from platform backends.
package gamepad

import "math"

const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80
)

// jsEvent mirrors struct js_event from linux/joystick.h.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// xpadButtons maps joystick button numbers to masks for the xpad driver layout.
var xpadButtons = []Buttons{A, B, X, Y, LeftShoulder, RightShoulder, Back, Start, Guide, LeftThumb, RightThumb}

// applyJoystickEvent folds one joystick event into f. Unknown numbers are ignored.
func applyJoystickEvent(f *Frame, e jsEvent) {
	switch e.Type &^ jsEventInit {
	case jsEventButton:
		if int(e.Number) >= len(xpadButtons) {
			return
		}
		mask := xpadButtons[e.Number]
		if e.Value != 0 {
			f.Buttons |= mask
		} else {
			f.Buttons &^= mask
		}
	case jsEventAxis:
		applyJoystickAxis(f, e.Number, e.Value)
	}
}

// applyJoystickAxis maps xpad axis numbers; Y axes arrive down-positive.
func applyJoystickAxis(f *Frame, number uint8, v int16) {
	switch number {
	case 0:
		f.LX = v
	case 1:
		f.LY = invertAxis(v)
	case 2:
		f.LT = triggerFromAxis(v)
	case 3:
		f.RX = v
	case 4:
		f.RY = invertAxis(v)
	case 5:
		f.RT = triggerFromAxis(v)
	case 6:
		f.Buttons = hatButtons(f.Buttons, v, DPadLeft, DPadRight)
	case 7:
		f.Buttons = hatButtons(f.Buttons, v, DPadUp, DPadDown)
	}
}

// invertAxis negates v without overflowing on the minimum value.
func invertAxis(v int16) int16 {
	if v == math.MinInt16 {
		return AxisMax
	}
	return -v
}

// triggerFromAxis rescales a full-range axis (-32767 released) to 0-255.
func triggerFromAxis(v int16) uint8 {
	scaled := (int(v) + AxisMax) * 255 / (2 * AxisMax)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// hatButtons converts a hat axis into a pair of d-pad buttons.
func hatButtons(b Buttons, v int16, neg, pos Buttons) Buttons {
	b &^= neg | pos
	switch {
	case v < 0:
		b |= neg
	case v > 0:
		b |= pos
	}
	return b
}
