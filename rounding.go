package evmmath

import (
	"fmt"
	"strings"
)

// RoundingMode determines how an inexact quotient is rounded to an integer.
type RoundingMode int8

const (
	// Down truncates the quotient towards zero.
	Down RoundingMode = iota
	// Up rounds the quotient to the smallest integer not less than it.
	// The formula (n + d - 1) / d is exact for non-negative operands.
	Up
	// HalfUp rounds the quotient to the nearest integer, with ties
	// rounded away from zero for non-negative operands.
	HalfUp
)

// String implements [fmt.Stringer] interface.
// It returns "down", "up" or "half-up".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	switch m {
	case Down:
		return "down"
	case Up:
		return "up"
	case HalfUp:
		return "half-up"
	}
	return fmt.Sprintf("RoundingMode(%d)", int8(m))
}

// valid returns true if m is one of the defined rounding modes.
func (m RoundingMode) valid() bool {
	return m == Down || m == Up || m == HalfUp
}

// ParseRoundingMode converts a case-insensitive name to a rounding mode.
// Accepted names are "down", "up", "half-up", and their aliases
// "floor", "ceil", "halfup", "half_up" and "round".
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down", "floor":
		return Down, nil
	case "up", "ceil":
		return Up, nil
	case "half-up", "halfup", "half_up", "round":
		return HalfUp, nil
	}
	return Down, fmt.Errorf("%q: %w", s, errInvalidRounding)
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%v: %w", m, errInvalidRounding)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}
