package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// candidate is an entry found by a source, before its executable is resolved.
type candidate struct {
	name       string
	appID      string
	installDir string
}

// steamLibraries returns the library roots listed by root's libraryfolders.vdf,
// with root itself first. Duplicates are removed.
func steamLibraries(root string) []string {
	libs := []string{root}
	data, err := os.ReadFile(filepath.Join(root, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		debugf("discovery: libraryfolders: %v", err)
		return libs
	}
	doc, err := ParseKeyValues(string(data))
	if err != nil {
		debugf("discovery: libraryfolders: %v", err)
		return libs
	}
	folders := doc.Child("libraryfolders")
	if folders == nil {
		return libs
	}

	seen := map[string]bool{pathKey(root): true}
	for _, entry := range folders.Children {
		if _, err := strconv.Atoi(entry.Key); err != nil {
			continue
		}
		// Newer files nest a block with "path"; older ones map the index to the path directly.
		path := entry.Value
		if entry.Block {
			path = entry.String("path")
		}
		if path == "" || seen[pathKey(path)] {
			continue
		}
		seen[pathKey(path)] = true
		libs = append(libs, path)
	}
	return libs
}

// steamCandidates reads every appmanifest_*.acf in each library. Manifests
// that cannot be read or that lack appid, name, or installdir are skipped.
func steamCandidates(root string) []candidate {
	var out []candidate
	for _, lib := range steamLibraries(root) {
		apps := filepath.Join(lib, "steamapps")
		matches, err := filepath.Glob(filepath.Join(apps, "appmanifest_*.acf"))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, path := range matches {
			c, ok := readManifest(path)
			if !ok {
				continue
			}
			c.installDir = filepath.Join(apps, "common", c.installDir)
			out = append(out, c)
		}
	}
	return out
}

// readManifest extracts the fields of one appmanifest file.
func readManifest(path string) (candidate, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		debugf("discovery: manifest %s: %v", path, err)
		return candidate{}, false
	}
	doc, err := ParseKeyValues(string(data))
	if err != nil {
		debugf("discovery: manifest %s: %v", path, err)
		return candidate{}, false
	}
	state := doc.Child("AppState")
	c := candidate{
		appID:      state.String("appid"),
		name:       state.String("name"),
		installDir: state.String("installdir"),
	}
	if c.appID == "" || c.name == "" || c.installDir == "" {
		debugf("discovery: manifest %s: missing fields", path)
		return candidate{}, false
	}
	if !isDigits(c.appID) {
		debugf("discovery: manifest %s: bad appid %q", path, c.appID)
		return candidate{}, false
	}
	return c, true
}

// pathKey normalizes a path for duplicate detection.
func pathKey(path string) string {
	return strings.ToLower(filepath.Clean(path))
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
