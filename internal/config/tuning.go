// Package config loads environment configuration for PadNexus.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// XInput's recommended stick deadzones.
	defaultLeftDeadzone  = 7849
	defaultRightDeadzone = 8689

	defaultScrollScale     = 256
	defaultPointerMaxSpeed = 15
	maxStickMagnitude      = 32767
)

// Tuning holds the analog mapping constants.
type Tuning struct {
	// LeftDeadzone is the circular deadzone on the left stick's combined magnitude.
	LeftDeadzone float64 `yaml:"left_deadzone"`
	// RightDeadzone is the single-axis deadzone on the right stick's vertical axis.
	RightDeadzone int `yaml:"right_deadzone"`
	// ScrollScale divides the right stick value to get a wheel delta.
	ScrollScale int `yaml:"scroll_scale"`
	// PointerMaxSpeed is the pointer delta at full deflection.
	PointerMaxSpeed float64 `yaml:"pointer_max_speed"`
}

// DefaultTuning returns the built-in analog mapping constants.
func DefaultTuning() Tuning {
	return Tuning{
		LeftDeadzone:    defaultLeftDeadzone,
		RightDeadzone:   defaultRightDeadzone,
		ScrollScale:     defaultScrollScale,
		PointerMaxSpeed: defaultPointerMaxSpeed,
	}
}

// LoadTuning reads tuning overrides from a YAML file. Missing files return defaults;
// keys absent from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t, nil
		}
		return Tuning{}, err
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every constant is in range.
func (t Tuning) Validate() error {
	if t.LeftDeadzone < 0 || t.LeftDeadzone >= maxStickMagnitude {
		return fmt.Errorf("left_deadzone must be 0-%d", maxStickMagnitude-1)
	}
	if t.RightDeadzone < 0 || t.RightDeadzone >= maxStickMagnitude {
		return fmt.Errorf("right_deadzone must be 0-%d", maxStickMagnitude-1)
	}
	if t.ScrollScale <= 0 {
		return errors.New("scroll_scale must be > 0")
	}
	if t.PointerMaxSpeed <= 0 {
		return errors.New("pointer_max_speed must be > 0")
	}
	return nil
}
