//go:build !windows && !linux

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

const defaultBackend = BackendSDL
