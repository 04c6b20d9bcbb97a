// Package control translates controller state into synthesized input and shell events.
package control

import (
	"math"

	"github.com/frudas24/padnexus/internal/config"
	"github.com/frudas24/padnexus/internal/gamepad"
)

// maxScrollDelta bounds a single cycle's wheel delta.
const maxScrollDelta = 127

// ScrollDelta maps the right stick vertical axis to a wheel delta.
// Positive axis (stick up) yields a positive delta. ok is false inside the deadzone.
func ScrollDelta(ry int16, t config.Tuning) (int, bool) {
	v := int(ry)
	if abs(v) <= t.RightDeadzone || t.ScrollScale <= 0 {
		return 0, false
	}
	delta := clampInt(v/t.ScrollScale, -maxScrollDelta, maxScrollDelta)
	return delta, delta != 0
}

// PointerDelta maps the left stick to relative pointer motion using a circular
// deadzone on the combined magnitude. The Y axis is inverted so stick up moves
// the pointer up the screen. ok is false inside the deadzone.
func PointerDelta(lx, ly int16, t config.Tuning) (dx, dy int, ok bool) {
	x := float64(lx)
	y := float64(ly)
	if math.Hypot(x, y) <= t.LeftDeadzone {
		return 0, 0, false
	}
	speed := t.PointerMaxSpeed
	dx = int(clampFloat(x/gamepad.AxisMax*speed, -speed, speed))
	dy = int(clampFloat(-y/gamepad.AxisMax*speed, -speed, speed))
	return dx, dy, dx != 0 || dy != 0
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat bounds v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// abs returns the absolute value of an integer.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
