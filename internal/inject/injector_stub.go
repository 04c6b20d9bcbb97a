//go:build !windows && !linux

// Package inject synthesizes keyboard and pointer input on the host.
package inject

// NoopInjector is a placeholder injector for unsupported platforms.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on unsupported platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// PressKey returns ErrUnsupported.
func (n *NoopInjector) PressKey(k Key) error {
	_ = k
	return ErrUnsupported
}

// MoveRel returns ErrUnsupported.
func (n *NoopInjector) MoveRel(dx, dy int) error {
	_ = dx
	_ = dy
	return ErrUnsupported
}

// Wheel returns ErrUnsupported.
func (n *NoopInjector) Wheel(delta int) error {
	_ = delta
	return ErrUnsupported
}
