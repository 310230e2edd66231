package evmmath

import (
	"fmt"
	"math/big"
)

// Avg returns the weighted average of x and y:
//
//	((S - w) * x + w * y + S / 2) / S
//
// where S is the unit of scale and w is weight clamped into [0, S].
// The weight is the scaled blend factor towards y, so Avg returns x
// for w <= 0 and y for w >= S.
func Avg(x, y, weight *big.Int, scale Scale) *big.Int {
	one := scale.unit()

	// Clamping
	w := getBint()
	defer putBint(w)
	switch {
	case weight.Sign() < 0:
		w.SetInt64(0)
	case weight.Cmp(one) > 0:
		w.Set(one)
	default:
		w.Set(weight)
	}

	// Numerator
	num := new(big.Int).Sub(one, w)
	num.Mul(num, x)
	w.Mul(w, y)
	num.Add(num, w)

	z, err := MulDiv(num, bone, one, HalfUp)
	if err != nil {
		panic(fmt.Sprintf("Avg(%v, %v, %v, %v) failed: %v", x, y, weight, scale, err))
	}
	return z
}

// Pow returns x raised to the power of exp, where x is scaled by scale.
// Every intermediate product is rounded according to mode, and
// exponentiation by squaring is used, so Pow performs O(log exp)
// multiplications.
//
// Pow returns scale.One() if exp is 0, and an error if exp is negative.
func Pow(x *big.Int, exp int, scale Scale, mode RoundingMode) (*big.Int, error) {
	if exp < 0 {
		return nil, fmt.Errorf("computing [%v^%v]: negative exponent: %w", x, exp, errInvalidOperation)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("computing [%v^%v]: %v: %w", x, exp, mode, errInvalidRounding)
	}
	return pow(x, exp, scale.unit(), mode), nil
}

// pow computes x^exp recursively. The arguments must be valid.
func pow(x *big.Int, exp int, one *big.Int, mode RoundingMode) *big.Int {
	// Special cases
	switch exp {
	case 0:
		return new(big.Int).Set(one)
	case 1:
		return new(big.Int).Set(x)
	}
	// General case
	x2 := MustMulDiv(x, x, one, mode)
	if exp%2 == 0 {
		return pow(x2, exp/2, one, mode)
	}
	return MustMulDiv(x, pow(x2, (exp-1)/2, one, mode), one, mode)
}

// ExpTaylorN returns the Taylor polynomial of degree n for e^x,
// where x is scaled by scale:
//
//	S + x + x^2 / 2! + ... + x^n / n!
//
// Each monomial is derived from the previous one as m * x / (k * S),
// rounded according to mode. The result is a deliberate truncation and
// its accuracy depends on n and |x|.
//
// ExpTaylorN returns scale.One() if x or n is 0, and an error if n is
// negative.
func ExpTaylorN(x *big.Int, n int, scale Scale, mode RoundingMode) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("computing [exp(%v)] with %v terms: %w", x, n, errInvalidOperation)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("computing [exp(%v)]: %v: %w", x, mode, errInvalidRounding)
	}

	one := scale.unit()
	z := new(big.Int).Set(one)
	m := new(big.Int).Set(one)
	d := getBint()
	defer putBint(d)
	for k := 1; k <= n; k++ {
		d.SetInt64(int64(k))
		d.Mul(d, one)
		m = MustMulDiv(m, x, d, mode)
		if m.Sign() == 0 {
			break // all further monomials are 0 as well
		}
		z.Add(z, m)
	}
	return z, nil
}
