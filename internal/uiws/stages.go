package uiws

// Stage tracks how far a UI connection has progressed towards receiving the
// game list.
type Stage int

const (
	// StageWaiting means the library has not been scanned yet.
	StageWaiting Stage = iota
	// StageEnvironmentReady means the library scan finished.
	StageEnvironmentReady
	// StageControllerReady means the UI socket is connected.
	StageControllerReady
	// StageNavigationComplete means the UI reported it finished loading.
	StageNavigationComplete
)

// String returns the stage name used in logs.
func (s Stage) String() string {
	switch s {
	case StageWaiting:
		return "waiting"
	case StageEnvironmentReady:
		return "environment_ready"
	case StageControllerReady:
		return "controller_ready"
	case StageNavigationComplete:
		return "navigation_complete"
	default:
		return "unknown"
	}
}

// pipeline is the per-connection stage state. The game list is delivered
// once all three conditions hold, exactly once per connection.
type pipeline struct {
	envReady  bool
	connected bool
	loaded    bool
	pushed    bool
}

// stage reports the furthest stage reached in order.
func (p *pipeline) stage() Stage {
	switch {
	case !p.envReady:
		return StageWaiting
	case !p.connected:
		return StageEnvironmentReady
	case !p.loaded:
		return StageControllerReady
	default:
		return StageNavigationComplete
	}
}

// take reports whether the games should be pushed now and marks them pushed.
func (p *pipeline) take() bool {
	if p.pushed || p.stage() != StageNavigationComplete {
		return false
	}
	p.pushed = true
	return true
}
