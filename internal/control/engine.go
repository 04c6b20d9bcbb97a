// Package control translates controller state into synthesized input and shell events.
package control

import (
	"context"
	"log"
	"time"

	"github.com/frudas24/padnexus/internal/config"
	"github.com/frudas24/padnexus/internal/gamepad"
	"github.com/frudas24/padnexus/internal/inject"
	"github.com/frudas24/padnexus/internal/session"
)

const defaultInterval = 16 * time.Millisecond

// Options configures the engine.
type Options struct {
	Interval time.Duration
	Tuning   config.Tuning
	// ChordWhileSuppressed keeps polling while the UI is visible so the stick
	// chord can hide it again. No input is injected while suppressed.
	ChordWhileSuppressed bool
}

// Engine polls a controller on a fixed cadence and turns frame differences
// into injected input and control events. All fields are owned by the
// goroutine running Run.
type Engine struct {
	source   gamepad.Source
	injector inject.Injector
	state    *session.State
	sink     Sink
	osk      OSKProbe
	opts     Options

	prev      gamepad.Frame
	connected bool
	sleep     func(time.Duration)
}

// NewEngine wires an engine. osk may be nil, in which case the keyboard is
// always treated as absent.
func NewEngine(source gamepad.Source, injector inject.Injector, state *session.State, sink Sink, osk OSKProbe, opts Options) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	return &Engine{
		source:   source,
		injector: injector,
		state:    state,
		sink:     sink,
		osk:      osk,
		opts:     opts,
		sleep:    time.Sleep,
	}
}

// Run polls until ctx is cancelled or the shared state stops running.
// Shutdown is checked once per cycle.
func (e *Engine) Run(ctx context.Context) {
	log.Printf("engine: polling every %v", e.opts.Interval)
	for ctx.Err() == nil && e.state.Running() {
		e.Step()
		e.sleep(e.opts.Interval)
	}
	log.Printf("engine: stopped")
}

// Step runs a single polling cycle.
func (e *Engine) Step() {
	suppressed := e.state.Suppressed()
	if suppressed && !e.opts.ChordWhileSuppressed {
		// The read is skipped, so prev stays at the last pre-suppression frame.
		return
	}

	cur, err := e.source.Poll()
	if err != nil {
		e.setConnected(false, err)
		return
	}
	e.setConnected(true, nil)

	res := Translate(e.prev, cur, suppressed, e.opts.Tuning)
	for _, kind := range res.Events {
		e.post(kind)
	}
	e.applyActions(res.Actions)

	e.prev = cur
}

// post builds and hands an event to the sink without blocking.
func (e *Engine) post(kind EventKind) {
	ev := Event{Kind: kind}
	if kind == OSKToggleRequested {
		ev.Show = e.osk == nil || !e.osk.Present()
	}
	if e.sink == nil {
		return
	}
	if !e.sink.Post(ev) {
		log.Printf("engine: dropped %s event, shell queue full", kind)
	}
}

// applyActions executes actions using the injector. Failures are not retried.
func (e *Engine) applyActions(actions []Action) {
	for _, action := range actions {
		if err := e.applyAction(action); err != nil && debugEnabled() {
			log.Printf("engine: %s action failed: %v", action.Type, err)
		}
	}
}

// applyAction executes a single action.
func (e *Engine) applyAction(action Action) error {
	switch action.Type {
	case ActKey:
		return e.injector.PressKey(action.Key)
	case ActMove:
		return e.injector.MoveRel(action.DX, action.DY)
	case ActScroll:
		return e.injector.Wheel(action.Delta)
	default:
		return nil
	}
}

// setConnected records controller presence and logs transitions only.
func (e *Engine) setConnected(connected bool, err error) {
	e.state.SetControllerPresent(connected)
	if connected == e.connected {
		return
	}
	e.connected = connected
	if connected {
		log.Printf("controller: connected")
		return
	}
	log.Printf("controller: unavailable (%v)", err)
}
