// Package gamepad reads controller state snapshots from platform backends.
package gamepad

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable indicates the controller could not be read this cycle.
var ErrUnavailable = errors.New("controller unavailable")

// ErrUnsupported indicates the requested backend is not built for this platform.
var ErrUnsupported = errors.New("input backend not supported on this platform")

// Source returns controller snapshots on demand.
type Source interface {
	// Poll returns the current state or an error wrapping ErrUnavailable.
	Poll() (Frame, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendAuto     = "auto"
	BackendXInput   = "xinput"
	BackendJoystick = "joystick"
	BackendSDL      = "sdl"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Index is the XInput user index or SDL device index.
	Index int
	// Device is the Linux joystick device path.
	Device string
}

// Open returns a Source for the requested backend.
func Open(opts Options) (Source, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" || backend == BackendAuto {
		backend = defaultBackend
	}
	switch backend {
	case BackendXInput:
		return openXInput(opts.Index)
	case BackendJoystick:
		return openJoystick(opts.Device)
	case BackendSDL:
		return openSDL(opts.Index)
	default:
		return nil, fmt.Errorf("unknown input backend %q", opts.Backend)
	}
}
