// Package app wires the engine, shell, discovery, and UI server together.
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/frudas24/padnexus/internal/config"
	"github.com/frudas24/padnexus/internal/control"
	"github.com/frudas24/padnexus/internal/discovery"
	"github.com/frudas24/padnexus/internal/gamepad"
	"github.com/frudas24/padnexus/internal/inject"
	"github.com/frudas24/padnexus/internal/session"
	"github.com/frudas24/padnexus/internal/shell"
	"github.com/frudas24/padnexus/internal/uiws"
)

// Keyboard is the on-screen keyboard used by the engine and the shell.
type Keyboard interface {
	control.OSKProbe
	shell.Keyboard
}

// App coordinates the polling engine, shell loop, library scan, and HTTP surface.
type App struct {
	cfg     config.Config
	state   *session.State
	source  gamepad.Source
	library *discovery.Service
	shell   *shell.Shell
	ui      *uiws.Server
	engine  *control.Engine

	wg sync.WaitGroup
}

// New creates a new application with its dependencies wired. keyboard and
// onExit may be nil.
func New(cfg config.Config, state *session.State, source gamepad.Source, injector inject.Injector, keyboard Keyboard, library *discovery.Service, onExit func()) (*App, error) {
	if state == nil {
		return nil, errors.New("state is required")
	}
	if source == nil {
		return nil, errors.New("controller source is required")
	}
	if injector == nil {
		return nil, errors.New("injector is required")
	}
	if library == nil {
		return nil, errors.New("discovery service is required")
	}

	app := &App{
		cfg:     cfg,
		state:   state,
		source:  source,
		library: library,
	}
	app.ui = uiws.NewServer(app.handleUICommand)

	var sk shell.Keyboard
	var probe control.OSKProbe
	if keyboard != nil {
		sk, probe = keyboard, keyboard
	}
	app.shell = shell.New(state, app.ui, sk, cfg.EventQueueSize, onExit)
	app.engine = control.NewEngine(source, injector, state, app.shell, probe, control.Options{
		Interval:             cfg.PollInterval,
		Tuning:               cfg.Tuning,
		ChordWhileSuppressed: cfg.ChordWhileSuppressed,
	})
	return app, nil
}

// Start launches the shell loop, the engine loop, and the library scan.
func (a *App) Start(ctx context.Context) {
	a.wg.Add(3)
	go func() {
		defer a.wg.Done()
		a.shell.Run(ctx)
	}()
	go func() {
		defer a.wg.Done()
		a.engine.Run(ctx)
	}()
	go func() {
		defer a.wg.Done()
		a.scanLibrary(ctx)
	}()
}

// Stop waits for the loops and the library scan to exit and releases the controller.
// The caller cancels the context passed to Start first.
func (a *App) Stop() error {
	a.state.Stop()
	a.wg.Wait()
	return a.source.Close()
}

// Submit queues a shell command.
func (a *App) Submit(cmd shell.Command) bool {
	return a.shell.Submit(cmd)
}

// scanLibrary runs discovery and hands the result to the UI. A cancelled
// scan is dropped so shutdown does not wait for the whole library.
func (a *App) scanLibrary(ctx context.Context) {
	games := a.library.Scan(ctx, nil)
	if ctx.Err() != nil {
		return
	}
	a.ui.SetGames(games)
}

// handleUICommand forwards websocket commands to the shell.
func (a *App) handleUICommand(name string) {
	cmd, ok := shell.ParseCommand(name)
	if !ok {
		return
	}
	_ = a.shell.Submit(cmd)
}
