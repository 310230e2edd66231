package evmmath

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ToDecimals converts x from a precision of from decimal digits to a
// precision of to decimal digits.
// When precision is reduced, the result is x / 10^(from-to) rounded using
// [HalfUp]; otherwise it is x * 10^(to-from), which is exact.
//
// ToDecimals returns an error if from or to is negative.
func ToDecimals(x *big.Int, from, to int) (*big.Int, error) {
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("rescaling %v from %v to %v digits: %w", x, from, to, errScaleRange)
	}
	if to <= from {
		return MulDiv(x, bone, pow10(from-to), HalfUp)
	}
	return new(big.Int).Mul(x, pow10(to-from)), nil
}

// Format returns x / 10^decimals as a string with exactly digits digits
// after the decimal point.
// Extra fractional digits are cut off, not rounded, and missing ones are
// padded with zeros.
// If digits is 0, the decimal point is omitted.
// If digits is negative, all decimals fractional digits are kept.
//
// The result is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// Format panics if decimals is negative.
func Format(x *big.Int, decimals, digits int) string {
	if decimals < 0 {
		panic(fmt.Sprintf("Format(%v, %v, %v) failed: %v", x, decimals, digits, errScaleRange))
	}
	if digits < 0 {
		digits = decimals
	}

	// Coefficient
	coef := new(big.Int).Abs(x).String()
	if len(coef) <= decimals {
		coef = strings.Repeat("0", decimals-len(coef)+1) + coef
	}
	intpart, fracpart := coef[:len(coef)-decimals], coef[len(coef)-decimals:]

	var buf strings.Builder
	buf.Grow(len(intpart) + digits + 2)

	// Sign
	if x.Sign() < 0 {
		buf.WriteByte('-')
	}

	// Integer
	buf.WriteString(intpart)

	// Fraction
	if digits > 0 {
		buf.WriteByte('.')
		if digits <= len(fracpart) {
			buf.WriteString(fracpart[:digits])
		} else {
			buf.WriteString(fracpart)
			buf.WriteString(strings.Repeat("0", digits-len(fracpart)))
		}
	}

	return buf.String()
}

// Parse converts a decimal string to an integer scaled by 10^decimals.
// It is the inverse of [Format].
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	5.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Parse returns an error:
//   - if decimals is negative;
//   - if the string does not represent a valid decimal number;
//   - if there are more than decimals non-zero fractional digits.
func Parse(s string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, fmt.Errorf("parsing %q with %v decimals: %w", s, decimals, errScaleRange)
	}

	var (
		pos      int
		width    int
		neg      bool
		hascoef  bool
		intpart  string
		fracpart string
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		pos++
	}
	intpart = s[start:pos]

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			pos++
		}
		fracpart = s[start:pos]
	}

	if pos != width {
		return nil, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], errInvalidDecimal)
	}
	if !hascoef {
		return nil, fmt.Errorf("parsing %q: no coefficient: %w", s, errInvalidDecimal)
	}

	// Trailing zeros beyond the precision are insignificant
	if len(fracpart) > decimals {
		if strings.TrimRight(fracpart[decimals:], "0") != "" {
			return nil, fmt.Errorf("parsing %q: more than %v fractional digits: %w", s, decimals, errInvalidDecimal)
		}
		fracpart = fracpart[:decimals]
	}

	digits := intpart + fracpart + strings.Repeat("0", decimals-len(fracpart))
	if digits == "" {
		digits = "0"
	}
	z, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("parsing %q: %w", s, errInvalidDecimal)
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// Float64 returns the nearest binary floating-point number of x / 10^decimals.
//
// Float64 returns an error if decimals is negative or if the value is out of
// the float64 range.
func Float64(x *big.Int, decimals int) (float64, error) {
	if decimals < 0 {
		return 0, fmt.Errorf("converting %v with %v decimals: %w", x, decimals, errScaleRange)
	}
	f, err := strconv.ParseFloat(Format(x, decimals, -1), 64)
	if err != nil {
		return 0, fmt.Errorf("converting %v with %v decimals: %w", x, decimals, err)
	}
	return f, nil
}
