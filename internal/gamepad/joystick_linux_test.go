//go:build linux

package gamepad

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// TestJoystickSource_UnavailableUntilInitialState verifies a reconnect reports
// the held buttons from the init burst instead of an empty frame.
func TestJoystickSource_UnavailableUntilInitialState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "js0")
	if err := unix.Mkfifo(path, 0o600); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	src, err := openJoystick(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	// Opening the writer blocks until the reader goroutine has the FIFO open.
	w, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	defer w.Close()
	defer src.Close()

	held := []jsEvent{
		{Type: jsEventButton | jsEventInit, Number: 0, Value: 1},
		{Type: jsEventButton | jsEventInit, Number: 7, Value: 1},
	}
	for _, e := range held {
		if err := binary.Write(w, binary.LittleEndian, e); err != nil {
			t.Fatalf("write event: %v", err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		f, err := src.Poll()
		if err == nil {
			if f.Buttons != A|Start {
				t.Fatalf("expected first readable frame to hold A|Start, got %#04x", f.Buttons)
			}
			return
		}
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable while settling, got %v", err)
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected device to become available, last error %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
