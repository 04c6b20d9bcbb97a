// Package control translates controller state into synthesized input and shell events.
package control

import "sync/atomic"

// debugLogs controls whether per-cycle logs are emitted.
var debugLogs atomic.Bool

// SetDebugLogging enables/disables verbose engine logs.
func SetDebugLogging(enabled bool) {
	debugLogs.Store(enabled)
}

// debugEnabled reports whether verbose engine logs are enabled.
func debugEnabled() bool {
	return debugLogs.Load()
}
