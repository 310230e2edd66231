package evmmath

import (
	"fmt"
	"math/big"
)

// Unit is implemented by the marker types that bind a [Fixed] number
// to its scale.
type Unit interface {
	Scale() Scale
}

// PercentUnit binds a [Fixed] number to [PercentScale].
type PercentUnit struct{}

// Scale returns [PercentScale].
func (PercentUnit) Scale() Scale { return PercentScale }

// WadUnit binds a [Fixed] number to [WadScale].
type WadUnit struct{}

// Scale returns [WadScale].
func (WadUnit) Scale() Scale { return WadScale }

// RayUnit binds a [Fixed] number to [RayScale].
type RayUnit struct{}

// Scale returns [RayScale].
func (RayUnit) Scale() Scale { return RayScale }

type (
	// Percent is a fixed-point number with 4 decimal digits,
	// where 1.0000 represents 100%.
	Percent = Fixed[PercentUnit]
	// Wad is a fixed-point number with 18 decimal digits.
	Wad = Fixed[WadUnit]
	// Ray is a fixed-point number with 27 decimal digits.
	Ray = Fixed[RayUnit]
)

// Fixed is an immutable fixed-point number, stored as an integer scaled by
// the scale of U.
// Numbers of different units cannot be mixed without [Convert].
//
// The zero value is 0.
//
// Multiplication, division, powers and square roots round using [HalfUp],
// unless the method name says otherwise; [Fixed.ExpTaylorN] rounds using
// [Down].
type Fixed[U Unit] struct {
	v *big.Int
}

// bzero is the integer 0. It must never be modified.
var bzero = new(big.Int)

// scaleOf returns the scale of unit U.
func scaleOf[U Unit]() Scale {
	var u U
	return u.Scale()
}

// NewFixed returns a fixed-point number whose scaled representation is v.
// For example, NewFixed[WadUnit](big.NewInt(5e17)) is 0.5.
func NewFixed[U Unit](v *big.Int) Fixed[U] {
	return Fixed[U]{v: new(big.Int).Set(v)}
}

// NewFixedFromInt64 returns a fixed-point number equal to n,
// i.e. scaled by the unit of U.
func NewFixedFromInt64[U Unit](n int64) Fixed[U] {
	z := big.NewInt(n)
	z.Mul(z, scaleOf[U]().unit())
	return Fixed[U]{v: z}
}

// ParseFixed converts a decimal string, such as "1.25", to a fixed-point
// number. Also see function [Parse].
func ParseFixed[U Unit](s string) (Fixed[U], error) {
	v, err := scaleOf[U]().Parse(s)
	if err != nil {
		return Fixed[U]{}, err
	}
	return Fixed[U]{v: v}, nil
}

// ParsePercent is like [ParseFixed] for [Percent]. The string is a
// fraction with up to 4 decimal digits, so "0.05" is 5% and "5" is 500%.
// Use [ParsePercentPoints] to read percentage points instead.
func ParsePercent(s string) (Percent, error) {
	return ParseFixed[PercentUnit](s)
}

// ParsePercentPoints converts percentage points with up to 2 decimal
// digits to [Percent], so "5" is 5% and "12.5" is 12.5%.
func ParsePercentPoints(s string) (Percent, error) {
	v, err := Parse(s, 2)
	if err != nil {
		return Percent{}, err
	}
	// Points at 2 decimals are raw percent units at 4 decimals.
	return Percent{v: v}, nil
}

// ParseWad is like [ParseFixed] for [Wad].
func ParseWad(s string) (Wad, error) {
	return ParseFixed[WadUnit](s)
}

// ParseRay is like [ParseFixed] for [Ray].
func ParseRay(s string) (Ray, error) {
	return ParseFixed[RayUnit](s)
}

// Convert rescales f to unit V, rounding using [HalfUp] when
// precision is lost.
func Convert[V, U Unit](f Fixed[U]) Fixed[V] {
	v := scaleOf[U]().Rescale(f.bint(), scaleOf[V]())
	return Fixed[V]{v: v}
}

// bint returns the scaled representation without copying.
func (f Fixed[U]) bint() *big.Int {
	if f.v == nil {
		return bzero
	}
	return f.v
}

// BigInt returns the scaled representation of f.
func (f Fixed[U]) BigInt() *big.Int {
	return new(big.Int).Set(f.bint())
}

// Scale returns the scale of f.
func (f Fixed[U]) Scale() Scale {
	return scaleOf[U]()
}

// One returns 1 in the unit of f.
func (f Fixed[U]) One() Fixed[U] {
	return Fixed[U]{v: scaleOf[U]().One()}
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fixed[U]) Sign() int {
	return f.bint().Sign()
}

// IsZero returns true if f = 0.
func (f Fixed[U]) IsZero() bool {
	return f.Sign() == 0
}

// Cmp compares f and g and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
func (f Fixed[U]) Cmp(g Fixed[U]) int {
	return f.bint().Cmp(g.bint())
}

// Equal returns true if f = g.
func (f Fixed[U]) Equal(g Fixed[U]) bool {
	return f.Cmp(g) == 0
}

// Neg returns -f.
func (f Fixed[U]) Neg() Fixed[U] {
	return Fixed[U]{v: new(big.Int).Neg(f.bint())}
}

// Abs returns |f|.
func (f Fixed[U]) Abs() Fixed[U] {
	return Fixed[U]{v: Abs(f.bint())}
}

// Add returns f + g.
func (f Fixed[U]) Add(g Fixed[U]) Fixed[U] {
	return Fixed[U]{v: new(big.Int).Add(f.bint(), g.bint())}
}

// Sub returns f - g.
func (f Fixed[U]) Sub(g Fixed[U]) Fixed[U] {
	return Fixed[U]{v: new(big.Int).Sub(f.bint(), g.bint())}
}

// Mul returns f * g rounded using [HalfUp].
func (f Fixed[U]) Mul(g Fixed[U]) Fixed[U] {
	return f.mul(g, HalfUp)
}

// MulUp returns f * g rounded using [Up].
func (f Fixed[U]) MulUp(g Fixed[U]) Fixed[U] {
	return f.mul(g, Up)
}

// MulDown returns f * g rounded using [Down].
func (f Fixed[U]) MulDown(g Fixed[U]) Fixed[U] {
	return f.mul(g, Down)
}

func (f Fixed[U]) mul(g Fixed[U], mode RoundingMode) Fixed[U] {
	return Fixed[U]{v: MustMulDiv(f.bint(), g.bint(), scaleOf[U]().unit(), mode)}
}

// Div returns f / g rounded using [HalfUp].
//
// Div returns an error if g is 0 and f is not.
func (f Fixed[U]) Div(g Fixed[U]) (Fixed[U], error) {
	return f.div(g, HalfUp)
}

// DivUp returns f / g rounded using [Up].
//
// DivUp returns an error if g is 0 and f is not.
func (f Fixed[U]) DivUp(g Fixed[U]) (Fixed[U], error) {
	return f.div(g, Up)
}

// DivDown returns f / g rounded using [Down].
//
// DivDown returns an error if g is 0 and f is not.
func (f Fixed[U]) DivDown(g Fixed[U]) (Fixed[U], error) {
	return f.div(g, Down)
}

func (f Fixed[U]) div(g Fixed[U], mode RoundingMode) (Fixed[U], error) {
	z, err := MulDiv(f.bint(), scaleOf[U]().unit(), g.bint(), mode)
	if err != nil {
		return Fixed[U]{}, err
	}
	return Fixed[U]{v: z}, nil
}

// IncreaseBy returns f * (1 + r) rounded using [HalfUp].
// For example, increasing 100 by 0.05 gives 105.
func (f Fixed[U]) IncreaseBy(r Fixed[U]) Fixed[U] {
	return f.Mul(f.One().Add(r))
}

// DecreaseBy returns f * (1 - r) rounded using [HalfUp].
// For example, decreasing 100 by 0.05 gives 95.
func (f Fixed[U]) DecreaseBy(r Fixed[U]) Fixed[U] {
	return f.Mul(f.One().Sub(r))
}

// Avg returns the weighted average of f and g, where weight is the blend
// factor towards g clamped into [0, 1].
// Also see function [Avg].
func (f Fixed[U]) Avg(g, weight Fixed[U]) Fixed[U] {
	return Fixed[U]{v: Avg(f.bint(), g.bint(), weight.bint(), scaleOf[U]())}
}

// Pow returns f raised to the power of exp, rounding using [HalfUp].
//
// Pow returns an error if exp is negative.
func (f Fixed[U]) Pow(exp int) (Fixed[U], error) {
	return f.pow(exp, HalfUp)
}

// PowUp is like [Fixed.Pow] but rounds using [Up].
func (f Fixed[U]) PowUp(exp int) (Fixed[U], error) {
	return f.pow(exp, Up)
}

// PowDown is like [Fixed.Pow] but rounds using [Down].
func (f Fixed[U]) PowDown(exp int) (Fixed[U], error) {
	return f.pow(exp, Down)
}

func (f Fixed[U]) pow(exp int, mode RoundingMode) (Fixed[U], error) {
	z, err := Pow(f.bint(), exp, scaleOf[U](), mode)
	if err != nil {
		return Fixed[U]{}, err
	}
	return Fixed[U]{v: z}, nil
}

// Sqrt returns the square root of f, rounding using [HalfUp].
//
// Sqrt returns an error if f is negative.
func (f Fixed[U]) Sqrt() (Fixed[U], error) {
	z, err := Sqrt(f.bint(), scaleOf[U](), HalfUp)
	if err != nil {
		return Fixed[U]{}, err
	}
	return Fixed[U]{v: z}, nil
}

// ExpTaylorN approximates e^f with a Taylor polynomial of degree n,
// rounding each monomial using [Down].
// Also see function [ExpTaylorN].
//
// ExpTaylorN returns an error if n is negative.
func (f Fixed[U]) ExpTaylorN(n int) (Fixed[U], error) {
	z, err := ExpTaylorN(f.bint(), n, scaleOf[U](), Down)
	if err != nil {
		return Fixed[U]{}, err
	}
	return Fixed[U]{v: z}, nil
}

// ToPercent converts f to [Percent].
func (f Fixed[U]) ToPercent() Percent {
	return Convert[PercentUnit](f)
}

// ToWad converts f to [Wad].
func (f Fixed[U]) ToWad() Wad {
	return Convert[WadUnit](f)
}

// ToRay converts f to [Ray].
func (f Fixed[U]) ToRay() Ray {
	return Convert[RayUnit](f)
}

// Format returns f with exactly digits digits after the decimal point,
// truncating extra digits. Also see function [Format].
func (f Fixed[U]) Format(digits int) string {
	return scaleOf[U]().Format(f.bint(), digits)
}

// String implements [fmt.Stringer] interface and returns f with all the
// fractional digits of its unit, e.g. "1.000000000000000000" for a [Wad].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fixed[U]) String() string {
	return f.Format(-1)
}

// Float64 returns the nearest binary floating-point number of f.
func (f Fixed[U]) Float64() (float64, error) {
	return Float64(f.bint(), scaleOf[U]().Prec())
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fixed[U]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [ParseFixed].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fixed[U]) UnmarshalText(text []byte) error {
	g, err := ParseFixed[U](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", f, err)
	}
	*f = g
	return nil
}

// MinFixed returns the smallest of f and others.
func MinFixed[U Unit](f Fixed[U], others ...Fixed[U]) Fixed[U] {
	m := f
	for _, g := range others {
		if m.Cmp(g) > 0 {
			m = g
		}
	}
	return m
}

// MaxFixed returns the largest of f and others.
func MaxFixed[U Unit](f Fixed[U], others ...Fixed[U]) Fixed[U] {
	m := f
	for _, g := range others {
		if m.Cmp(g) < 0 {
			m = g
		}
	}
	return m
}

// SumFixed returns the sum of values, or 0 if there are none.
func SumFixed[U Unit](values ...Fixed[U]) Fixed[U] {
	z := new(big.Int)
	for _, g := range values {
		z.Add(z, g.bint())
	}
	return Fixed[U]{v: z}
}
