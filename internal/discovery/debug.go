package discovery

import (
	"log"
	"sync/atomic"
)

var debugLogs atomic.Bool

// SetDebugLogging enables per-entry discovery logs.
func SetDebugLogging(enabled bool) {
	debugLogs.Store(enabled)
}

func debugf(format string, args ...any) {
	if debugLogs.Load() {
		log.Printf(format, args...)
	}
}
