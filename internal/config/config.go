// Package config loads environment configuration for PadNexus.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr     = "127.0.0.1:8788"
	defaultDataDir        = "./data"
	defaultPollIntervalMs = 16
	defaultBackend        = "auto"
	defaultControllerIdx  = 0
	defaultJoystickDevice = "/dev/input/js0"
	defaultScanUninstall  = true
	defaultExecutableExts = ".exe"
	defaultEventQueueSize = 16
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr           string
	DataDir              string
	TuningPath           string
	PollInterval         time.Duration
	InputBackend         string
	ControllerIndex      int
	JoystickDevice       string
	SteamPath            string
	ScanUninstall        bool
	ExecutableExts       []string
	UIStartVisible       bool
	ChordWhileSuppressed bool
	EventQueueSize       int
	Tuning               Tuning
}

// Load reads configuration from ./data/.env, environment variables, and the tuning file.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        defaultDataDir,
		PollInterval:   defaultPollIntervalMs * time.Millisecond,
		InputBackend:   defaultBackend,
		JoystickDevice: defaultJoystickDevice,
		ScanUninstall:  defaultScanUninstall,
		EventQueueSize: defaultEventQueueSize,
		Tuning:         DefaultTuning(),
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.TuningPath = envString("TUNING_PATH", filepath.Join(cfg.DataDir, "tuning.yaml"))
	cfg.InputBackend = strings.ToLower(envString("INPUT_BACKEND", cfg.InputBackend))
	cfg.JoystickDevice = envString("JOYSTICK_DEVICE", cfg.JoystickDevice)
	cfg.SteamPath = envString("STEAM_PATH", "")
	cfg.ScanUninstall = envBool("SCAN_UNINSTALL", cfg.ScanUninstall)
	cfg.ExecutableExts = parseExts(envString("EXECUTABLE_EXTS", defaultExecutableExts))
	cfg.UIStartVisible = envBool("UI_START_VISIBLE", false)
	cfg.ChordWhileSuppressed = envBool("CHORD_WHILE_SUPPRESSED", false)

	pollMs, err := envInt("POLL_INTERVAL_MS", defaultPollIntervalMs)
	if err != nil {
		return Config{}, err
	}
	if pollMs <= 0 {
		return Config{}, fmt.Errorf("POLL_INTERVAL_MS must be > 0")
	}
	cfg.PollInterval = time.Duration(pollMs) * time.Millisecond

	idx, err := envInt("CONTROLLER_INDEX", defaultControllerIdx)
	if err != nil {
		return Config{}, err
	}
	if idx < 0 {
		return Config{}, fmt.Errorf("CONTROLLER_INDEX must be >= 0")
	}
	cfg.ControllerIndex = idx

	queue, err := envInt("EVENT_QUEUE_SIZE", cfg.EventQueueSize)
	if err != nil {
		return Config{}, err
	}
	if queue <= 0 {
		return Config{}, fmt.Errorf("EVENT_QUEUE_SIZE must be > 0")
	}
	cfg.EventQueueSize = queue

	tuning, err := LoadTuning(cfg.TuningPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Tuning = tuning

	return cfg, nil
}

// parseExts splits a comma-separated extension list and normalizes each entry.
func parseExts(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
