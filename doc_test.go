package evmmath_test

import (
	"fmt"
	"math/big"

	"github.com/govalues/evmmath"
)

// accrue compounds principal by rate per period over the given number
// of periods, rounding every step half up.
func accrue(principal, rate evmmath.Wad, periods int) (evmmath.Wad, error) {
	factor, err := principal.One().Add(rate).Pow(periods)
	if err != nil {
		return evmmath.Wad{}, fmt.Errorf("computing growth factor: %w", err)
	}
	return principal.Mul(factor), nil
}

func Example_interestAccrual() {
	principal := evmmath.MustParseFixed[evmmath.WadUnit]("1000")
	rate := evmmath.MustParseFixed[evmmath.WadUnit]("0.1")
	total, err := accrue(principal, rate, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(total.Format(2))
	// Output:
	// 1331.00
}

func ExampleMulDiv() {
	x, y, d := big.NewInt(7), big.NewInt(5), big.NewInt(10)
	fmt.Println(evmmath.MulDiv(x, y, d, evmmath.Down))
	fmt.Println(evmmath.MulDiv(x, y, d, evmmath.Up))
	fmt.Println(evmmath.MulDiv(x, y, d, evmmath.HalfUp))
	// Output:
	// 3 <nil>
	// 4 <nil>
	// 4 <nil>
}

func ExampleMulDiv_divisionByZero() {
	_, err := evmmath.MulDiv(big.NewInt(1), big.NewInt(1), big.NewInt(0), evmmath.Down)
	fmt.Println(err)
	// Output:
	// computing [1 * 1 / 0]: division by zero
}

func ExampleAvg() {
	x := evmmath.MustParse("1", 18)
	y := evmmath.MustParse("3", 18)
	w := evmmath.WadScale.Half()
	fmt.Println(evmmath.Avg(x, y, w, evmmath.WadScale))
	// Output:
	// 2000000000000000000
}

func ExamplePow() {
	x := evmmath.MustParse("2", 18)
	fmt.Println(evmmath.Pow(x, 10, evmmath.WadScale, evmmath.Down))
	// Output:
	// 1024000000000000000000 <nil>
}

func ExampleSqrt() {
	x := evmmath.MustParse("5", 18)
	fmt.Println(evmmath.Sqrt(x, evmmath.WadScale, evmmath.Down))
	fmt.Println(evmmath.Sqrt(x, evmmath.WadScale, evmmath.Up))
	fmt.Println(evmmath.Sqrt(big.NewInt(5), evmmath.Unscaled, evmmath.HalfUp))
	// Output:
	// 2236067977499789696 <nil>
	// 2236067977499789697 <nil>
	// 2 <nil>
}

func ExampleExpTaylorN() {
	x := evmmath.MustParse("1", 18)
	fmt.Println(evmmath.ExpTaylorN(x, 10, evmmath.WadScale, evmmath.Down))
	// Output:
	// 2718281801146384475 <nil>
}

func ExampleToDecimals() {
	x := evmmath.MustParse("1.23456789", 18)
	fmt.Println(evmmath.ToDecimals(x, 18, 4))
	fmt.Println(evmmath.ToDecimals(big.NewInt(12346), 4, 27))
	// Output:
	// 12346 <nil>
	// 1234600000000000000000000000 <nil>
}

func ExampleFormat() {
	x := big.NewInt(1_234_567)
	fmt.Println(evmmath.Format(x, 4, -1))
	fmt.Println(evmmath.Format(x, 4, 2))
	fmt.Println(evmmath.Format(x, 4, 0))
	fmt.Println(evmmath.Format(x, 4, 6))
	// Output:
	// 123.4567
	// 123.45
	// 123
	// 123.456700
}

func ExampleParse() {
	fmt.Println(evmmath.Parse("1.5", 18))
	fmt.Println(evmmath.Parse("-0.0001", 4))
	fmt.Println(evmmath.Parse("0.00001", 4))
	// Output:
	// 1500000000000000000 <nil>
	// -1 <nil>
	// <nil> parsing "0.00001": more than 4 fractional digits: invalid decimal
}

func ExampleParseRoundingMode() {
	fmt.Println(evmmath.ParseRoundingMode("ceil"))
	fmt.Println(evmmath.ParseRoundingMode("half-up"))
	// Output:
	// up <nil>
	// half-up <nil>
}

func ExampleScale_WithMode() {
	s := evmmath.WadScale.WithMode(evmmath.Up)
	x := evmmath.MustParse("0.999999999999999999", 18)
	fmt.Println(s)
	fmt.Println(s.Mul(x, x))
	// Output:
	// 1e18/up
	// 999999999999999999
}

func ExampleConvert() {
	p := evmmath.MustParseFixed[evmmath.PercentUnit]("0.05")
	fmt.Println(evmmath.Convert[evmmath.RayUnit](p))
	fmt.Println(p.ToWad())
	// Output:
	// 0.050000000000000000000000000
	// 0.050000000000000000
}

func ExampleFixed_Mul() {
	a := evmmath.MustParseFixed[evmmath.WadUnit]("1.5")
	b := evmmath.MustParseFixed[evmmath.WadUnit]("2.25")
	fmt.Println(a.Mul(b))
	// Output:
	// 3.375000000000000000
}

func ExampleFixed_IncreaseBy() {
	base := evmmath.MustParseFixed[evmmath.PercentUnit]("100")
	rate := evmmath.MustParseFixed[evmmath.PercentUnit]("0.05")
	fmt.Println(base.IncreaseBy(rate))
	fmt.Println(base.DecreaseBy(rate))
	// Output:
	// 105.0000
	// 95.0000
}

func ExampleFixed_Sqrt() {
	x := evmmath.NewFixedFromInt64[evmmath.PercentUnit](5)
	fmt.Println(x.Sqrt())
	// Output:
	// 2.2361 <nil>
}

func ExampleCompDiv() {
	x := evmmath.MustParse("1", 18)
	y := evmmath.MustParse("3", 18)
	fmt.Println(evmmath.CompDiv(x, y))
	// Output:
	// 333333333333333333 <nil>
}

func ExampleVault_ToShares() {
	v := evmmath.Vault{
		VirtualAssets: big.NewInt(1),
		VirtualShares: big.NewInt(1),
		Mode:          evmmath.Down,
	}
	fmt.Println(v.ToShares(big.NewInt(100), big.NewInt(1000), big.NewInt(500)))
	// Output:
	// 50 <nil>
}
