// Package control translates controller state into synthesized input and shell events.
package control

import (
	"github.com/frudas24/padnexus/internal/config"
	"github.com/frudas24/padnexus/internal/gamepad"
	"github.com/frudas24/padnexus/internal/inject"
)

const (
	// uiChord toggles the UI on the rising edge of both stick clicks held together.
	uiChord = gamepad.LeftThumb | gamepad.RightThumb
	// oskModifier must be held (level) while oskTrigger is newly pressed (edge).
	oskModifier = gamepad.Start
	oskTrigger  = gamepad.X
)

// keyBindings is the fixed button to key table, evaluated in order.
var keyBindings = []struct {
	button gamepad.Buttons
	key    inject.Key
}{
	{gamepad.A, inject.KeyEnter},
	{gamepad.B, inject.KeyEscape},
	{gamepad.Start, inject.KeyMeta},
}

// Result holds what one cycle produced.
type Result struct {
	Events  []EventKind
	Actions []Action
}

// Translate compares two consecutive frames. It is a pure function of its
// inputs. While suppressed only the UI chord is evaluated and no actions are
// returned.
func Translate(prev, cur gamepad.Frame, suppressed bool, t config.Tuning) Result {
	var res Result

	if gamepad.Pressed(prev, cur, uiChord) {
		res.Events = append(res.Events, ToggleUIRequested)
	}
	if suppressed {
		return res
	}

	if cur.Held(oskModifier) && gamepad.Pressed(prev, cur, oskTrigger) {
		res.Events = append(res.Events, OSKToggleRequested)
	}

	for _, b := range keyBindings {
		if gamepad.Pressed(prev, cur, b.button) {
			res.Actions = append(res.Actions, Action{Type: ActKey, Key: b.key})
		}
	}

	if delta, ok := ScrollDelta(cur.RY, t); ok {
		res.Actions = append(res.Actions, Action{Type: ActScroll, Delta: delta})
	}
	if dx, dy, ok := PointerDelta(cur.LX, cur.LY, t); ok {
		res.Actions = append(res.Actions, Action{Type: ActMove, DX: dx, DY: dy})
	}

	return res
}
