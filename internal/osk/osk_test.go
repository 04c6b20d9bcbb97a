//go:build !windows

package osk

import (
	"errors"
	"testing"
)

// TestToggle_HideAbsentIsNoop verifies hiding an absent keyboard does nothing.
func TestToggle_HideAbsentIsNoop(t *testing.T) {
	if err := New().Toggle(false); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

// TestToggle_ShowUnsupported verifies show reports the missing integration.
func TestToggle_ShowUnsupported(t *testing.T) {
	if err := New().Toggle(true); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
