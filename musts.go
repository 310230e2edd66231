package evmmath

import (
	"fmt"
	"math/big"
)

// MustNewScale is like [NewScale] but panics if the precision is out of range.
// It simplifies safe initialization of global variables holding scales.
func MustNewScale(prec int) Scale {
	s, err := NewScale(prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewScale(%v) failed: %v", prec, err))
	}
	return s
}

// MustMulDiv is like [MulDiv] but panics if computing error.
func MustMulDiv(x, y, d *big.Int, mode RoundingMode) *big.Int {
	z, err := MulDiv(x, y, d, mode)
	if err != nil {
		panic(fmt.Sprintf("MustMulDiv(%v, %v, %v, %v) failed: %v", x, y, d, mode, err))
	}
	return z
}

// MustPow is like [Pow] but panics if computing error.
func MustPow(x *big.Int, exp int, scale Scale, mode RoundingMode) *big.Int {
	z, err := Pow(x, exp, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v, %v, %v) failed: %v", x, exp, scale, mode, err))
	}
	return z
}

// MustSqrt is like [Sqrt] but panics if computing error.
func MustSqrt(x *big.Int, scale Scale, mode RoundingMode) *big.Int {
	z, err := Sqrt(x, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v, %v, %v) failed: %v", x, scale, mode, err))
	}
	return z
}

// MustExpTaylorN is like [ExpTaylorN] but panics if computing error.
func MustExpTaylorN(x *big.Int, n int, scale Scale, mode RoundingMode) *big.Int {
	z, err := ExpTaylorN(x, n, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustExpTaylorN(%v, %v, %v, %v) failed: %v", x, n, scale, mode, err))
	}
	return z
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding scaled integers.
func MustParse(s string, decimals int) *big.Int {
	z, err := Parse(s, decimals)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, decimals, err))
	}
	return z
}

// MustParseFixed is like [ParseFixed] but panics if the string cannot be parsed.
func MustParseFixed[U Unit](s string) Fixed[U] {
	f, err := ParseFixed[U](s)
	if err != nil {
		panic(fmt.Sprintf("MustParseFixed(%q) failed: %v", s, err))
	}
	return f
}

// MustDiv is like [Fixed.Div] but panics if computing error.
func (f Fixed[U]) MustDiv(g Fixed[U]) Fixed[U] {
	z, err := f.Div(g)
	if err != nil {
		panic(fmt.Sprintf("%v.MustDiv(%v) failed: %v", f, g, err))
	}
	return z
}

// MustPow is like [Fixed.Pow] but panics if computing error.
func (f Fixed[U]) MustPow(exp int) Fixed[U] {
	z, err := f.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("%v.MustPow(%v) failed: %v", f, exp, err))
	}
	return z
}
