package discovery

import "strings"

// UninstallEntry is one program from the system uninstall inventory.
type UninstallEntry struct {
	DisplayName     string
	InstallLocation string
	Publisher       string
}

// uninstallCandidates keeps entries that name an install location and are
// not vendor components or updates.
func uninstallCandidates(entries []UninstallEntry) []candidate {
	var out []candidate
	for _, e := range entries {
		name := strings.TrimSpace(e.DisplayName)
		dir := strings.TrimSpace(e.InstallLocation)
		if name == "" || dir == "" {
			continue
		}
		if strings.Contains(e.Publisher, "Microsoft") || strings.Contains(name, "Update") {
			continue
		}
		out = append(out, candidate{name: name, installDir: strings.Trim(dir, `"`)})
	}
	return out
}
