// Package shell owns UI visibility, the on-screen keyboard, and process exit.
// Engine events and UI commands arrive through one queue and are handled on
// the goroutine running Run.
package shell

import (
	"context"
	"log"

	"github.com/frudas24/padnexus/internal/control"
	"github.com/frudas24/padnexus/internal/session"
)

// Command is a shell action requested by the UI or HTTP API.
type Command string

const (
	// CmdToggleUI flips UI visibility.
	CmdToggleUI Command = "toggleUI"
	// CmdOpenConfig shows the UI on the configuration hub.
	CmdOpenConfig Command = "openConfig"
	// CmdExit stops the process.
	CmdExit Command = "exit"
)

// ParseCommand validates a command name.
func ParseCommand(name string) (Command, bool) {
	switch c := Command(name); c {
	case CmdToggleUI, CmdOpenConfig, CmdExit:
		return c, true
	default:
		return "", false
	}
}

// UI receives notifications for the frontend.
type UI interface {
	SendVisibility(visible bool)
	SendOpenConfig()
}

// Keyboard shows or hides the on-screen keyboard.
type Keyboard interface {
	Toggle(show bool) error
}

// item is one queued request: an engine event or a command.
type item struct {
	event *control.Event
	cmd   Command
}

// Shell processes control requests in order.
type Shell struct {
	state  *session.State
	ui     UI
	osk    Keyboard
	queue  chan item
	onExit func()
}

// Ensure Shell accepts engine events.
var _ control.Sink = (*Shell)(nil)

// New creates a shell with a queue of size entries. ui, osk and onExit may be nil.
func New(state *session.State, ui UI, osk Keyboard, size int, onExit func()) *Shell {
	if size <= 0 {
		size = 1
	}
	return &Shell{
		state:  state,
		ui:     ui,
		osk:    osk,
		queue:  make(chan item, size),
		onExit: onExit,
	}
}

// Post queues an engine event without blocking.
func (s *Shell) Post(ev control.Event) bool {
	return s.enqueue(item{event: &ev})
}

// Submit queues a command without blocking.
func (s *Shell) Submit(cmd Command) bool {
	return s.enqueue(item{cmd: cmd})
}

func (s *Shell) enqueue(it item) bool {
	select {
	case s.queue <- it:
		return true
	default:
		return false
	}
}

// Run handles queued requests until ctx is done or an exit command is processed.
func (s *Shell) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case it := <-s.queue:
			if !s.handle(it) {
				return
			}
		}
	}
}

// handle processes one request and reports whether the loop should continue.
func (s *Shell) handle(it item) bool {
	if it.event != nil {
		s.handleEvent(*it.event)
		return true
	}
	switch it.cmd {
	case CmdToggleUI:
		s.toggle()
	case CmdOpenConfig:
		s.setVisible(true)
		if s.ui != nil {
			s.ui.SendOpenConfig()
		}
	case CmdExit:
		log.Printf("shell: exit requested")
		s.state.Stop()
		if s.onExit != nil {
			s.onExit()
		}
		return false
	default:
		log.Printf("shell: unknown command %q", it.cmd)
	}
	return true
}

// handleEvent applies an engine event.
func (s *Shell) handleEvent(ev control.Event) {
	switch ev.Kind {
	case control.ToggleUIRequested:
		s.toggle()
	case control.OSKToggleRequested:
		if s.osk == nil {
			return
		}
		if err := s.osk.Toggle(ev.Show); err != nil {
			log.Printf("shell: osk: %v", err)
		}
	}
}

// toggle flips visibility and tells the UI.
func (s *Shell) toggle() {
	s.notify(s.state.ToggleUIVisible())
}

// setVisible updates the suppression flag and tells the UI.
func (s *Shell) setVisible(visible bool) {
	if s.state.UIVisible() == visible {
		return
	}
	s.state.SetUIVisible(visible)
	s.notify(visible)
}

func (s *Shell) notify(visible bool) {
	log.Printf("shell: ui visible=%v", visible)
	if s.ui != nil {
		s.ui.SendVisibility(visible)
	}
}
