package evmmath

import (
	"fmt"
	"math/big"
)

// MaxPrec is the largest number of decimal digits accepted by [NewScale].
const MaxPrec = 77

// Scale is a power-of-ten denominator, together with the rounding mode used
// by its own arithmetic methods.
//
// A scaled integer v represents the number v / 10^prec.
// The zero value is not usable; use [NewScale] or one of the presets.
type Scale struct {
	prec int
	one  *big.Int
	half *big.Int
	mode RoundingMode
}

// Frequently used scales.
var (
	// Unscaled is 10^0, i.e. plain integers.
	Unscaled = MustNewScale(0)
	// PercentScale is 10^4, where 10_000 represents 100%.
	PercentScale = MustNewScale(4)
	// WadScale is 10^18.
	WadScale = MustNewScale(18)
	// RayScale is 10^27.
	RayScale = MustNewScale(27)
)

// NewScale returns a scale of 10^prec with [HalfUp] rounding.
//
// NewScale returns an error if prec is negative or greater than [MaxPrec].
func NewScale(prec int) (Scale, error) {
	if prec < 0 || MaxPrec < prec {
		return Scale{}, fmt.Errorf("precision %v: %w", prec, errScaleRange)
	}
	one := pow10(prec)
	half := new(big.Int).Quo(one, btwo)
	return Scale{prec: prec, one: one, half: half, mode: HalfUp}, nil
}

// WithMode returns a copy of s that rounds according to mode.
// Also see method [Scale.Mode].
func (s Scale) WithMode(mode RoundingMode) Scale {
	s.mode = mode
	return s
}

// Prec returns the number of decimal digits of s.
func (s Scale) Prec() int {
	return s.prec
}

// Mode returns the rounding mode used by the arithmetic methods of s.
func (s Scale) Mode() RoundingMode {
	return s.mode
}

// One returns the scaled representation of 1, i.e. 10^prec.
func (s Scale) One() *big.Int {
	return new(big.Int).Set(s.unit())
}

// Half returns the scaled representation of 0.5, truncated for [Unscaled].
func (s Scale) Half() *big.Int {
	if s.half == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.half)
}

// unit returns 10^prec without copying.
// The zero Scale behaves like [Unscaled].
func (s Scale) unit() *big.Int {
	if s.one == nil {
		return bone
	}
	return s.one
}

// String returns a textual representation such as "1e18/half-up".
func (s Scale) String() string {
	return fmt.Sprintf("1e%v/%v", s.prec, s.mode)
}

// Mul returns x * y / 10^prec, rounded according to the mode of s.
//
// Mul panics if the mode of s is not a valid rounding mode.
func (s Scale) Mul(x, y *big.Int) *big.Int {
	z, err := MulDiv(x, y, s.unit(), s.mode)
	if err != nil {
		panic(fmt.Sprintf("%v.Mul(%v, %v) failed: %v", s, x, y, err))
	}
	return z
}

// Div returns x * 10^prec / y, rounded according to the mode of s.
//
// Div returns an error if y is 0.
func (s Scale) Div(x, y *big.Int) (*big.Int, error) {
	return MulDiv(x, s.unit(), y, s.mode)
}

// Avg is like [Avg] with scale s.
func (s Scale) Avg(x, y, weight *big.Int) *big.Int {
	return Avg(x, y, weight, s)
}

// Pow is like [Pow] with scale s and the mode of s.
func (s Scale) Pow(x *big.Int, exp int) (*big.Int, error) {
	return Pow(x, exp, s, s.mode)
}

// Sqrt is like [Sqrt] with scale s and the mode of s.
func (s Scale) Sqrt(x *big.Int) (*big.Int, error) {
	return Sqrt(x, s, s.mode)
}

// ExpTaylorN is like [ExpTaylorN] with scale s and the mode of s.
func (s Scale) ExpTaylorN(x *big.Int, n int) (*big.Int, error) {
	return ExpTaylorN(x, n, s, s.mode)
}

// Rescale converts x from scale s to scale t.
// Also see function [ToDecimals].
func (s Scale) Rescale(x *big.Int, t Scale) *big.Int {
	z, err := ToDecimals(x, s.prec, t.prec)
	if err != nil {
		panic(fmt.Sprintf("%v.Rescale(%v, %v) failed: %v", s, x, t, err))
	}
	return z
}

// Format is like [Format] with the precision of s.
func (s Scale) Format(x *big.Int, digits int) string {
	return Format(x, s.prec, digits)
}

// Parse is like [Parse] with the precision of s.
func (s Scale) Parse(str string) (*big.Int, error) {
	return Parse(str, s.prec)
}
