package evmmath

import (
	"fmt"
	"math/big"
)

// wadSquared is 10^36. It must never be modified.
var wadSquared = pow10(36)

// CompMul returns x * y / 10^18 truncated towards zero, matching the
// exponential arithmetic of Compound-style protocols.
// Unlike [MulDiv], it has no rounding mode and no zero shortcut.
func CompMul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Quo(z, WadScale.unit())
}

// CompDiv returns x * 10^36 / y / 10^18, truncating towards zero after
// each division, matching the exponential arithmetic of Compound-style
// protocols.
//
// CompDiv returns an error if y is 0.
func CompDiv(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, fmt.Errorf("computing [%v * 1e36 / %v / 1e18]: %w", x, y, errDivisionByZero)
	}
	z := new(big.Int).Mul(x, wadSquared)
	z.Quo(z, y)
	return z.Quo(z, WadScale.unit()), nil
}
