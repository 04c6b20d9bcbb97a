//go:build linux

// Package gamepad reads controller state snapshots from platform backends.
package gamepad

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

const defaultBackend = BackendJoystick

// jsiocgname is JSIOCGNAME(128).
const jsiocgname = 0x80006a13 + (128 << 16)

const reopenDelay = time.Second

// initSettle is how long the reader waits for more JS_EVENT_INIT events
// before treating the initial state as complete.
const initSettle = 50 * time.Millisecond

// joystickSource tracks a /dev/input/js* device on a reader goroutine and
// serves the latest state from Poll.
type joystickSource struct {
	path string

	mu        sync.Mutex
	frame     Frame
	connected bool
	file      *os.File
	closed    bool
	done      chan struct{}
}

// openJoystick starts reading the device; a missing device is not an error.
func openJoystick(device string) (Source, error) {
	if device == "" {
		return nil, errors.New("joystick device path is required")
	}
	s := &joystickSource{path: device, done: make(chan struct{})}
	go s.loop()
	return s, nil
}

// Poll returns the latest folded state.
func (s *joystickSource) Poll() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return Frame{}, ErrUnavailable
	}
	return s.frame, nil
}

// Close stops the reader goroutine and releases the device.
func (s *joystickSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	f := s.file
	s.file = nil
	s.connected = false
	s.mu.Unlock()
	if f != nil {
		return f.Close()
	}
	return nil
}

// loop opens the device, reads events until failure, and retries.
func (s *joystickSource) loop() {
	for {
		f, err := os.OpenFile(s.path, os.O_RDONLY, 0)
		if err == nil {
			s.read(f)
		}
		select {
		case <-s.done:
			return
		case <-time.After(reopenDelay):
		}
	}
}

// read consumes events from an open device until it fails. The device is
// reported connected only after the driver's initial state burst has been
// folded in, so buttons held across a reconnect never look newly pressed.
func (s *joystickSource) read(f *os.File) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = f.Close()
		return
	}
	s.file = f
	s.frame = Frame{}
	s.mu.Unlock()

	if name, err := deviceName(f); err == nil {
		log.Printf("joystick: %s (%s)", name, s.path)
	}

	// Without deadline support the first event marks the device connected.
	settling := f.SetReadDeadline(time.Now().Add(initSettle)) == nil
	for {
		var e jsEvent
		if err := binary.Read(f, binary.LittleEndian, &e); err != nil {
			if settling && errors.Is(err, os.ErrDeadlineExceeded) {
				settling = false
				_ = f.SetReadDeadline(time.Time{})
				s.setConnected(f)
				continue
			}
			break
		}
		s.mu.Lock()
		applyJoystickEvent(&s.frame, e)
		s.mu.Unlock()

		switch {
		case !settling:
			s.setConnected(f)
		case e.Type&jsEventInit != 0:
			_ = f.SetReadDeadline(time.Now().Add(initSettle))
		default:
			settling = false
			_ = f.SetReadDeadline(time.Time{})
			s.setConnected(f)
		}
	}

	s.mu.Lock()
	s.connected = false
	if s.file == f {
		s.file = nil
		_ = f.Close()
	}
	s.mu.Unlock()
}

// setConnected marks f's device readable unless it was closed meanwhile.
func (s *joystickSource) setConnected(f *os.File) {
	s.mu.Lock()
	if s.file == f && !s.closed {
		s.connected = true
	}
	s.mu.Unlock()
}

// deviceName queries the driver-reported device name without switching the
// descriptor to blocking mode, so Close still interrupts the reader.
func deviceName(f *os.File) (string, error) {
	raw, err := f.SyscallConn()
	if err != nil {
		return "", err
	}
	buf := make([]byte, 128)
	var errno unix.Errno
	if err := raw.Control(func(fd uintptr) {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, uintptr(jsiocgname), uintptr(unsafe.Pointer(&buf[0])))
	}); err != nil {
		return "", err
	}
	if errno != 0 {
		return "", fmt.Errorf("ioctl JSIOCGNAME: %w", errno)
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}
