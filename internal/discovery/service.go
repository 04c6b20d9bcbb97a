package discovery

import (
	"context"
	"log"
	"sync"
)

// Game is a launchable entry shown in the UI.
type Game struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	AppID string `json:"appId"`
}

// Options configures a Service.
type Options struct {
	// SteamPath overrides the registry lookup of the Steam client directory.
	SteamPath     string
	ScanUninstall bool
	// Exts lists executable extensions; defaults to .exe.
	Exts []string
}

// ProgressFunc is called after each candidate is resolved.
type ProgressFunc func(done, total int)

// Service scans the local machine for games and caches the last result.
type Service struct {
	opts Options

	// Hooks for platform lookups.
	steamPath func() (string, error)
	uninstall func() ([]UninstallEntry, error)

	mu    sync.RWMutex
	games []Game
}

// NewService creates a discovery service.
func NewService(opts Options) *Service {
	if len(opts.Exts) == 0 {
		opts.Exts = []string{".exe"}
	}
	return &Service{
		opts:      opts,
		steamPath: steamInstallPath,
		uninstall: readUninstallEntries,
	}
}

// Scan enumerates Steam libraries, then the uninstall inventory, and returns
// the combined list. It never fails; problems skip the affected entry.
// Cancelling ctx stops the scan between entries and leaves the cached list
// unchanged. progress may be nil.
func (s *Service) Scan(ctx context.Context, progress ProgressFunc) []Game {
	cands := s.candidates()
	games := make([]Game, 0, len(cands))
	seen := make(map[string]bool, len(cands))
	for i, c := range cands {
		if ctx.Err() != nil {
			log.Printf("discovery: cancelled after %d of %d entries", i, len(cands))
			return games
		}
		path, ok := resolvePath(ctx, c.installDir, s.opts.Exts)
		switch {
		case !ok:
			debugf("discovery: %s: install dir missing (%s)", c.name, c.installDir)
		case seen[pathKey(path)]:
			debugf("discovery: %s: duplicate path %s", c.name, path)
		default:
			seen[pathKey(path)] = true
			games = append(games, Game{Name: c.name, Path: path, AppID: c.appID})
		}
		if progress != nil {
			progress(i+1, len(cands))
		}
	}

	s.mu.Lock()
	s.games = games
	s.mu.Unlock()
	log.Printf("discovery: %d games", len(games))
	return games
}

// Games returns a copy of the last scan result.
func (s *Service) Games() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// candidates gathers unresolved entries from every source in order.
func (s *Service) candidates() []candidate {
	var out []candidate

	root := s.opts.SteamPath
	if root == "" && s.steamPath != nil {
		path, err := s.steamPath()
		if err != nil {
			debugf("discovery: steam: %v", err)
		}
		root = path
	}
	if root != "" {
		out = append(out, steamCandidates(root)...)
	}

	if s.opts.ScanUninstall && s.uninstall != nil {
		entries, err := s.uninstall()
		if err != nil {
			debugf("discovery: uninstall: %v", err)
		}
		out = append(out, uninstallCandidates(entries)...)
	}
	return out
}
