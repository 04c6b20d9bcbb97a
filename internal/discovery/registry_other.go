//go:build !windows

package discovery

import "errors"

var errNoRegistry = errors.New("registry not available on this platform")

// steamInstallPath is unavailable without the Windows registry.
func steamInstallPath() (string, error) {
	return "", errNoRegistry
}

// readUninstallEntries is unavailable without the Windows registry.
func readUninstallEntries() ([]UninstallEntry, error) {
	return nil, errNoRegistry
}
