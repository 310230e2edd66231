package evmmath

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	errDivisionByZero   = errors.New("division by zero")
	errInvalidOperation = errors.New("invalid operation")
	errInvalidRounding  = errors.New("invalid rounding mode")
	errInvalidDecimal   = errors.New("invalid decimal")
	errScaleRange       = errors.New("scale out of range")
)

// btwo is the integer 2. It must never be modified.
var btwo = big.NewInt(2)

// u256one is the 256-bit integer 1. It must never be modified.
var u256one = uint256.NewInt(1)

// MulDiv returns x * y / d rounded according to mode:
//
//   - [Down]:   (x * y) / d
//   - [Up]:     (x * y + d - 1) / d
//   - [HalfUp]: (x * y + d / 2) / d
//
// where "/" is integer division truncating towards zero.
// If x or y is 0, MulDiv returns 0 regardless of d.
//
// Scaled multiplication is MulDiv(x, y, scale, mode) and scaled division is
// MulDiv(x, scale, y, mode).
//
// MulDiv returns an error if d is 0 or mode is not a valid rounding mode.
func MulDiv(x, y, d *big.Int, mode RoundingMode) (*big.Int, error) {
	// Special case
	if x.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int), nil
	}
	// Errors
	if d.Sign() == 0 {
		return nil, fmt.Errorf("computing [%v * %v / %v]: %w", x, y, d, errDivisionByZero)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("computing [%v * %v / %v]: %v: %w", x, y, d, mode, errInvalidRounding)
	}
	// General case
	z, ok := mulDivFast(x, y, d, mode)
	if !ok {
		z = mulDivSlow(x, y, d, mode)
	}
	return z, nil
}

// MulDivDown is like [MulDiv] with [Down] rounding.
func MulDivDown(x, y, d *big.Int) (*big.Int, error) {
	return MulDiv(x, y, d, Down)
}

// MulDivUp is like [MulDiv] with [Up] rounding.
func MulDivUp(x, y, d *big.Int) (*big.Int, error) {
	return MulDiv(x, y, d, Up)
}

// MulDivHalfUp is like [MulDiv] with [HalfUp] rounding.
func MulDivHalfUp(x, y, d *big.Int) (*big.Int, error) {
	return MulDiv(x, y, d, HalfUp)
}

// mulDivFast computes MulDiv using 256-bit arithmetic with a 512-bit
// intermediate product. It reports false if any operand is negative or
// does not fit 256 bits, or if the result overflows 256 bits.
// The divisor must not be 0.
func mulDivFast(x, y, d *big.Int, mode RoundingMode) (*big.Int, bool) {
	if x.Sign() < 0 || y.Sign() < 0 || d.Sign() < 0 {
		return nil, false
	}
	ux, overflow := uint256.FromBig(x)
	if overflow {
		return nil, false
	}
	uy, overflow := uint256.FromBig(y)
	if overflow {
		return nil, false
	}
	ud, overflow := uint256.FromBig(d)
	if overflow {
		return nil, false
	}

	// Quotient
	q, overflow := new(uint256.Int).MulDivOverflow(ux, uy, ud)
	if overflow {
		return nil, false
	}

	// Rounding
	var inc bool
	switch mode {
	case Up:
		r := new(uint256.Int).MulMod(ux, uy, ud)
		inc = !r.IsZero()
	case HalfUp:
		// r + ⌊d / 2⌋ >= d is the same as r >= d - ⌊d / 2⌋
		r := new(uint256.Int).MulMod(ux, uy, ud)
		h := new(uint256.Int).Rsh(ud, 1)
		h.Sub(ud, h)
		inc = !r.Lt(h)
	}
	if inc {
		if _, overflow = q.AddOverflow(q, u256one); overflow {
			return nil, false
		}
	}

	return q.ToBig(), true
}

// mulDivSlow computes MulDiv using [big.Int] arithmetic.
// It evaluates the rounding formulas literally, so it also handles
// negative operands. The divisor must not be 0.
func mulDivSlow(x, y, d *big.Int, mode RoundingMode) *big.Int {
	z := new(big.Int).Mul(x, y)
	switch mode {
	case Up:
		z.Add(z, d)
		z.Sub(z, bone)
	case HalfUp:
		h := getBint()
		defer putBint(h)
		h.Quo(d, btwo)
		z.Add(z, h)
	}
	return z.Quo(z, d)
}
