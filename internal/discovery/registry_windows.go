//go:build windows

package discovery

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	steamKey     = `SOFTWARE\Valve\Steam`
	uninstallKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
)

// steamInstallPath reads the Steam client location from the 32-bit registry view.
func steamInstallPath() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, steamKey, registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		return "", fmt.Errorf("open steam key: %w", err)
	}
	defer k.Close()
	path, _, err := k.GetStringValue("InstallPath")
	if err != nil {
		return "", fmt.Errorf("read steam InstallPath: %w", err)
	}
	return path, nil
}

// readUninstallEntries lists the 64-bit uninstall inventory.
func readUninstallEntries() ([]UninstallEntry, error) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, uninstallKey, registry.ENUMERATE_SUB_KEYS|registry.WOW64_64KEY)
	if err != nil {
		return nil, fmt.Errorf("open uninstall key: %w", err)
	}
	defer root.Close()

	names, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("list uninstall keys: %w", err)
	}
	out := make([]UninstallEntry, 0, len(names))
	for _, name := range names {
		k, err := registry.OpenKey(root, name, registry.QUERY_VALUE|registry.WOW64_64KEY)
		if err != nil {
			continue
		}
		var e UninstallEntry
		e.DisplayName, _, _ = k.GetStringValue("DisplayName")
		e.InstallLocation, _, _ = k.GetStringValue("InstallLocation")
		e.Publisher, _, _ = k.GetStringValue("Publisher")
		k.Close()
		out = append(out, e)
	}
	return out, nil
}
