// Package app wires the engine, shell, discovery, and UI server together.
package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/padnexus/internal/shell"
	"github.com/frudas24/padnexus/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/games", a.handleGames)
	mux.HandleFunc("/api/command", a.handleCommand)
	mux.Handle("/ws/ui", a.ui)
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type stateResponse struct {
	UIVisible           bool `json:"uiVisible"`
	Running             bool `json:"running"`
	ControllerConnected bool `json:"controllerConnected"`
	Games               int  `json:"games"`
}

type commandRequest struct {
	Cmd string `json:"cmd"`
}

// handleState returns visibility, run state, controller presence, and library size.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	snap := a.state.Snapshot()
	resp := stateResponse{
		UIVisible:           snap.UIVisible,
		Running:             snap.Running,
		ControllerConnected: snap.ControllerPresent,
		Games:               len(a.library.Games()),
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGames returns the last scanned library.
func (a *App) handleGames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.library.Games())
}

// handleCommand queues a shell command.
func (a *App) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	cmd, ok := shell.ParseCommand(req.Cmd)
	if !ok {
		http.Error(w, "unknown command", http.StatusBadRequest)
		return
	}
	if !a.shell.Submit(cmd) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]bool{"ok": true})
}

// writeJSON encodes v with HTML escaping disabled so paths stay readable.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
