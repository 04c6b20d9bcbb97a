package control

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/frudas24/padnexus/internal/config"
	"github.com/frudas24/padnexus/internal/gamepad"
	"github.com/frudas24/padnexus/internal/inject"
	"github.com/frudas24/padnexus/internal/session"
	"github.com/frudas24/padnexus/internal/testutil"
)

// recordingSink collects posted events.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
	full   bool
}

// Post records ev unless the sink pretends to be full.
func (r *recordingSink) Post(ev Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return false
	}
	r.events = append(r.events, ev)
	return true
}

// fakeOSK reports a fixed presence.
type fakeOSK struct{ present bool }

// Present returns the configured presence.
func (f fakeOSK) Present() bool { return f.present }

// newTestEngine returns an engine wired to fakes with a hidden UI.
func newTestEngine(src *testutil.FakeSource, opts Options) (*Engine, *testutil.FakeInjector, *recordingSink, *session.State) {
	inj := &testutil.FakeInjector{}
	sink := &recordingSink{}
	state := session.New(false)
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	e := NewEngine(src, inj, state, sink, fakeOSK{}, opts)
	return e, inj, sink, state
}

// TestStep_HeldAcrossCyclesSingleKey verifies a held button injects one momentary press.
func TestStep_HeldAcrossCyclesSingleKey(t *testing.T) {
	held := gamepad.Frame{Buttons: gamepad.A}
	src := testutil.NewFakeSource(held, held, held, held)
	e, inj, _, _ := newTestEngine(src, Options{})

	for i := 0; i < 4; i++ {
		e.Step()
	}
	calls := inj.Snapshot()
	if len(calls) != 1 || calls[0].Name != "PressKey" || calls[0].Key != inject.KeyEnter {
		t.Fatalf("expected one Enter press, got %#v", calls)
	}
}

// TestStep_FailedReadKeepsPrevious verifies a disconnect does not fabricate edges on reconnect.
func TestStep_FailedReadKeepsPrevious(t *testing.T) {
	held := gamepad.Frame{Buttons: gamepad.A | gamepad.B}
	src := testutil.NewFakeSource(held)
	src.PushErr(gamepad.ErrUnavailable)
	src.PushErr(errors.New("transient"))
	src.Push(held)
	e, inj, _, state := newTestEngine(src, Options{})

	e.Step()
	if inj.Count("PressKey") != 2 {
		t.Fatalf("expected Enter and Escape on first cycle, got %#v", inj.Snapshot())
	}
	e.Step()
	e.Step()
	if state.ControllerPresent() {
		t.Fatalf("expected controller marked absent after failed reads")
	}
	e.Step()
	if inj.Count("PressKey") != 2 {
		t.Fatalf("expected no new presses after reconnect, got %#v", inj.Snapshot())
	}
	if !state.ControllerPresent() {
		t.Fatalf("expected controller marked present after reconnect")
	}
}

// TestStep_SuppressedSkipsReadAndInjection verifies nothing is read or injected while the UI is visible.
func TestStep_SuppressedSkipsReadAndInjection(t *testing.T) {
	src := testutil.NewFakeSource(gamepad.Frame{Buttons: gamepad.A, LX: 32767, RY: 32767})
	e, inj, sink, state := newTestEngine(src, Options{})
	state.SetUIVisible(true)

	e.Step()
	e.Step()
	if src.Polls != 0 {
		t.Fatalf("expected no polls while suppressed, got %d", src.Polls)
	}
	if len(inj.Snapshot()) != 0 || len(sink.events) != 0 {
		t.Fatalf("expected no output while suppressed, got calls=%#v events=%v", inj.Snapshot(), sink.events)
	}
}

// TestStep_StalePreviousAcrossSuppression verifies the pre-suppression frame is kept as prev.
func TestStep_StalePreviousAcrossSuppression(t *testing.T) {
	held := gamepad.Frame{Buttons: gamepad.A}
	src := testutil.NewFakeSource(held, held)
	e, inj, _, state := newTestEngine(src, Options{})

	e.Step()
	state.SetUIVisible(true)
	e.Step()
	state.SetUIVisible(false)
	e.Step()
	if inj.Count("PressKey") != 1 {
		t.Fatalf("expected held button not to re-fire after suppression, got %#v", inj.Snapshot())
	}
}

// TestStep_ChordWhileSuppressed verifies the opt-in chord can hide the UI without injecting.
func TestStep_ChordWhileSuppressed(t *testing.T) {
	chord := gamepad.Frame{Buttons: gamepad.LeftThumb | gamepad.RightThumb | gamepad.A, LX: 32767}
	src := testutil.NewFakeSource(chord)
	e, inj, sink, state := newTestEngine(src, Options{ChordWhileSuppressed: true})
	state.SetUIVisible(true)

	e.Step()
	if len(sink.events) != 1 || sink.events[0].Kind != ToggleUIRequested {
		t.Fatalf("expected toggle event, got %v", sink.events)
	}
	if len(inj.Snapshot()) != 0 {
		t.Fatalf("expected no injection while suppressed, got %#v", inj.Snapshot())
	}
}

// TestStep_OSKShowHideByPresence verifies the OSK event asks to show when absent and hide when present.
func TestStep_OSKShowHideByPresence(t *testing.T) {
	prev := gamepad.Frame{Buttons: gamepad.Start}
	cur := gamepad.Frame{Buttons: gamepad.Start | gamepad.X}

	for _, present := range []bool{false, true} {
		src := testutil.NewFakeSource(prev, cur)
		inj := &testutil.FakeInjector{}
		sink := &recordingSink{}
		e := NewEngine(src, inj, session.New(false), sink, fakeOSK{present: present}, Options{Tuning: config.DefaultTuning()})
		e.Step()
		e.Step()

		var osk []Event
		for _, ev := range sink.events {
			if ev.Kind == OSKToggleRequested {
				osk = append(osk, ev)
			}
		}
		if len(osk) != 1 || osk[0].Show == present {
			t.Fatalf("present=%v: expected one event with Show=%v, got %v", present, !present, osk)
		}
	}
}

// TestStep_FullQueueDoesNotBlock verifies a rejecting sink does not stall the cycle.
func TestStep_FullQueueDoesNotBlock(t *testing.T) {
	chord := gamepad.Frame{Buttons: gamepad.LeftThumb | gamepad.RightThumb | gamepad.A}
	src := testutil.NewFakeSource(chord)
	e, inj, sink, _ := newTestEngine(src, Options{})
	sink.full = true

	e.Step()
	if inj.Count("PressKey") != 1 {
		t.Fatalf("expected key injection to continue, got %#v", inj.Snapshot())
	}
}

// TestStep_InjectorErrorsIgnored verifies injection failures do not stop later actions.
func TestStep_InjectorErrorsIgnored(t *testing.T) {
	src := testutil.NewFakeSource(gamepad.Frame{Buttons: gamepad.A | gamepad.B, RY: 30000})
	e, inj, _, _ := newTestEngine(src, Options{})
	inj.Err = errors.New("refused")

	e.Step()
	if len(inj.Snapshot()) != 3 {
		t.Fatalf("expected all three actions attempted, got %#v", inj.Snapshot())
	}
}

// TestRun_StopsOnStateStop verifies the loop exits once the running flag clears.
func TestRun_StopsOnStateStop(t *testing.T) {
	src := testutil.NewFakeSource(gamepad.Frame{})
	e, _, _, state := newTestEngine(src, Options{Interval: time.Millisecond})
	cycles := 0
	e.sleep = func(time.Duration) {
		cycles++
		if cycles == 5 {
			state.Stop()
		}
	}

	e.Run(context.Background())
	if cycles != 5 {
		t.Fatalf("expected 5 cycles, got %d", cycles)
	}
}

// TestRun_StopsOnContextCancel verifies cancellation is observed at the top of a cycle.
func TestRun_StopsOnContextCancel(t *testing.T) {
	src := testutil.NewFakeSource(gamepad.Frame{})
	e, _, _, _ := newTestEngine(src, Options{Interval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	cycles := 0
	e.sleep = func(time.Duration) {
		cycles++
		cancel()
	}

	e.Run(ctx)
	if cycles != 1 {
		t.Fatalf("expected 1 cycle, got %d", cycles)
	}
}

// TestRun_SleepsEvenWhenSuppressed verifies the cadence holds when no work is done.
func TestRun_SleepsEvenWhenSuppressed(t *testing.T) {
	src := testutil.NewFakeSource(gamepad.Frame{})
	e, _, _, state := newTestEngine(src, Options{Interval: 16 * time.Millisecond})
	state.SetUIVisible(true)
	var slept []time.Duration
	e.sleep = func(d time.Duration) {
		slept = append(slept, d)
		if len(slept) == 3 {
			state.Stop()
		}
	}

	e.Run(context.Background())
	if len(slept) != 3 || slept[0] != 16*time.Millisecond {
		t.Fatalf("expected three 16ms sleeps, got %v", slept)
	}
}
