// Package main starts the PadNexus input engine and UI server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/padnexus/internal/app"
	"github.com/frudas24/padnexus/internal/config"
	"github.com/frudas24/padnexus/internal/control"
	"github.com/frudas24/padnexus/internal/discovery"
	"github.com/frudas24/padnexus/internal/gamepad"
	"github.com/frudas24/padnexus/internal/inject"
	"github.com/frudas24/padnexus/internal/osk"
	"github.com/frudas24/padnexus/internal/session"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setDebug(debug)
	logStartup(cfg)

	source, err := gamepad.Open(gamepad.Options{
		Backend: cfg.InputBackend,
		Index:   cfg.ControllerIndex,
		Device:  cfg.JoystickDevice,
	})
	if err != nil {
		return err
	}

	injector, err := openInjector(inject.NewInjector)
	if err != nil {
		_ = source.Close()
		return err
	}
	if c, ok := injector.(interface{ Close() error }); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Printf("shutdown: injector: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state := session.New(cfg.UIStartVisible)
	appInstance, err := app.New(cfg, state, source, injector, osk.New(), newLibrary(cfg), stop)
	if err != nil {
		_ = source.Close()
		return err
	}
	appInstance.Start(ctx)
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			stop()
			return err
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openInjector creates the platform injector. An unsupported platform keeps
// the returned no-op injector so the UI and discovery still work.
func openInjector(newInjector func() (inject.Injector, error)) (inject.Injector, error) {
	injector, err := newInjector()
	if errors.Is(err, inject.ErrUnsupported) && injector != nil {
		log.Printf("injector: %v (input will not be synthesized)", err)
		return injector, nil
	}
	if err != nil {
		return nil, err
	}
	return injector, nil
}

// newLibrary builds the discovery service from configuration.
func newLibrary(cfg config.Config) *discovery.Service {
	return discovery.NewService(discovery.Options{
		SteamPath:     cfg.SteamPath,
		ScanUninstall: cfg.ScanUninstall,
		Exts:          cfg.ExecutableExts,
	})
}

// setDebug toggles verbose logging in every package that has it.
func setDebug(debug bool) {
	control.SetDebugLogging(debug)
	discovery.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("PadNexus starting")
	logEnvStatus(cfg)
	log.Printf("input backend: %s (controller %d)", cfg.InputBackend, cfg.ControllerIndex)
	log.Printf("poll interval: %v", cfg.PollInterval)
	if cfg.ChordWhileSuppressed {
		log.Printf("ui chord: active while ui visible")
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether the .env and tuning files were found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if fileExists(cfg.TuningPath) {
		log.Printf("tuning: %s", cfg.TuningPath)
	} else {
		log.Printf("tuning: defaults (%s not found)", cfg.TuningPath)
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
