package evmmath

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Sqrt returns the square root of x, where x is scaled by scale:
//
//	round(sqrt(x * S))
//
// so that the result divided by S approximates the square root of x / S.
// The root is computed exactly and then rounded according to mode.
// With [Unscaled] and [Down] (or [HalfUp]) rounding, Sqrt(5) returns 2.
//
// Sqrt returns an error if x is negative.
func Sqrt(x *big.Int, scale Scale, mode RoundingMode) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("computing [sqrt(%v)]: negative operand: %w", x, errInvalidOperation)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("computing [sqrt(%v)]: %v: %w", x, mode, errInvalidRounding)
	}

	n := new(big.Int).Mul(x, scale.unit())
	r, ok := isqrtFast(n)
	if !ok {
		r = isqrtSlow(n)
	}

	// Rounding
	switch mode {
	case Up:
		// r^2 < n
		rem := getBint()
		defer putBint(rem)
		rem.Mul(r, r)
		if rem.Cmp(n) < 0 {
			r.Add(r, bone)
		}
	case HalfUp:
		// sqrt(n) >= r + 1/2 is the same as n - r^2 > r
		rem := getBint()
		defer putBint(rem)
		rem.Mul(r, r)
		rem.Sub(n, rem)
		if rem.Cmp(r) > 0 {
			r.Add(r, bone)
		}
	}
	return r, nil
}

// isqrtFast computes ⌊sqrt(n)⌋ using 256-bit arithmetic.
// It reports false if n does not fit 256 bits.
// n must not be negative.
func isqrtFast(n *big.Int) (*big.Int, bool) {
	u, overflow := uint256.FromBig(n)
	if overflow {
		return nil, false
	}
	return new(uint256.Int).Sqrt(u).ToBig(), true
}

// isqrtSlow computes ⌊sqrt(n)⌋ with Newton's method.
// n must not be negative.
//
// The seed 2^⌈bitlen(n)/2⌉ is never below the root, so the guesses
// decrease monotonically until they reach ⌊sqrt(n)⌋.
func isqrtSlow(n *big.Int) *big.Int {
	// Special case
	if n.Cmp(btwo) < 0 {
		return new(big.Int).Set(n)
	}
	// General case
	g := new(big.Int).Lsh(bone, uint(n.BitLen()+1)/2)
	y := getBint()
	defer putBint(y)
	for {
		// y = (g + n / g) / 2
		y.Quo(n, g)
		y.Add(y, g)
		y.Rsh(y, 1)
		if y.Cmp(g) >= 0 {
			return g
		}
		g.Set(y)
	}
}
