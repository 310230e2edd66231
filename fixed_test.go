package evmmath

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_ZeroValue(t *testing.T) {
	var w Wad
	assert.True(t, w.IsZero())
	assert.Equal(t, 0, w.Sign())
	assert.Equal(t, "0.000000000000000000", w.String())
	assert.Equal(t, "0", w.BigInt().String())
	assert.True(t, w.Add(w.One()).Equal(w.One()))
}

func TestFixed_Interfaces(t *testing.T) {
	var f any = Wad{}
	_, ok := f.(fmt.Stringer)
	assert.True(t, ok, "%T does not implement fmt.Stringer", f)
	_, ok = f.(encoding.TextMarshaler)
	assert.True(t, ok, "%T does not implement encoding.TextMarshaler", f)

	f = &Ray{}
	_, ok = f.(encoding.TextUnmarshaler)
	assert.True(t, ok, "%T does not implement encoding.TextUnmarshaler", f)
}

func TestNewFixed(t *testing.T) {
	v := big.NewInt(5e17)
	w := NewFixed[WadUnit](v)
	v.SetInt64(0)
	assert.Equal(t, "0.5", w.Format(1))

	b := w.BigInt()
	b.SetInt64(0)
	assert.Equal(t, "500000000000000000", w.BigInt().String())

	assert.Equal(t, "3.0000", NewFixedFromInt64[PercentUnit](3).String())
	assert.Equal(t, "-2.000", NewFixedFromInt64[RayUnit](-2).Format(3))
}

func TestParseFixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := ParsePercent("0.05")
		require.NoError(t, err)
		assert.Equal(t, "500", p.BigInt().String())

		w, err := ParseWad("1.5")
		require.NoError(t, err)
		assert.Equal(t, "1500000000000000000", w.BigInt().String())

		r, err := ParseRay("1")
		require.NoError(t, err)
		assert.True(t, r.Equal(r.One()))

		p, err = ParsePercent("5")
		require.NoError(t, err)
		assert.Equal(t, "5.0000", p.String())
	})

	t.Run("points", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			{"5", "0.0500"},
			{"12.5", "0.1250"},
			{"100", "1.0000"},
			{"-0.25", "-0.0025"},
		}
		for _, tt := range tests {
			got, err := ParsePercentPoints(tt.s)
			require.NoError(t, err, "ParsePercentPoints(%q)", tt.s)
			assert.Equal(t, tt.want, got.String(), "ParsePercentPoints(%q)", tt.s)
		}

		_, err := ParsePercentPoints("0.005")
		assert.ErrorIs(t, err, errInvalidDecimal)
	})

	t.Run("error", func(t *testing.T) {
		_, err := ParsePercent("0.00001")
		assert.ErrorIs(t, err, errInvalidDecimal)

		_, err = ParseWad("abc")
		assert.ErrorIs(t, err, errInvalidDecimal)

		assert.Panics(t, func() { MustParseFixed[RayUnit]("1,5") })
	})
}

func TestFixed_Mul(t *testing.T) {
	t.Run("percent", testFixedMul[PercentUnit])
	t.Run("wad", testFixedMul[WadUnit])
	t.Run("ray", testFixedMul[RayUnit])
}

// testFixedMul squares S - 1 in every rounding mode.
func testFixedMul[U Unit](t *testing.T) {
	var u U
	s := u.Scale().One()
	x := NewFixed[U](new(big.Int).Sub(s, bone))
	sm1 := new(big.Int).Sub(s, bone).String()
	sm2 := new(big.Int).Sub(s, btwo).String()

	assert.Equal(t, sm2, x.MulDown(x).BigInt().String())
	assert.Equal(t, sm1, x.MulUp(x).BigInt().String())
	assert.Equal(t, sm2, x.Mul(x).BigInt().String())
	assert.Equal(t, "0", x.MulDown(NewFixed[U](bone)).BigInt().String())
}

func TestFixed_Div(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		one := NewFixedFromInt64[WadUnit](1)
		three := NewFixedFromInt64[WadUnit](3)

		got, err := one.Div(three)
		require.NoError(t, err)
		assert.Equal(t, "333333333333333333", got.BigInt().String())

		got, err = one.DivUp(three)
		require.NoError(t, err)
		assert.Equal(t, "333333333333333334", got.BigInt().String())

		got, err = NewFixedFromInt64[WadUnit](2).DivDown(three)
		require.NoError(t, err)
		assert.Equal(t, "666666666666666666", got.BigInt().String())

		got, err = Wad{}.Div(Wad{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		assert.Equal(t, "2.0000", NewFixedFromInt64[PercentUnit](4).MustDiv(NewFixedFromInt64[PercentUnit](2)).String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewFixedFromInt64[WadUnit](1).Div(Wad{})
		assert.ErrorIs(t, err, errDivisionByZero)

		assert.Panics(t, func() { NewFixedFromInt64[RayUnit](1).MustDiv(Ray{}) })
	})
}

func TestFixed_IncreaseBy(t *testing.T) {
	x := NewFixedFromInt64[WadUnit](3)

	assert.Equal(t, "6", x.IncreaseBy(x.One()).Format(0))
	assert.True(t, x.DecreaseBy(x.One()).IsZero())

	base := NewFixedFromInt64[PercentUnit](100)
	rate := MustParseFixed[PercentUnit]("0.05")
	assert.Equal(t, "105.0000", base.IncreaseBy(rate).String())
	assert.Equal(t, "95.0000", base.DecreaseBy(rate).String())
}

func TestFixed_Arithmetic(t *testing.T) {
	a := MustParseFixed[WadUnit]("1.25")
	b := MustParseFixed[WadUnit]("-0.5")

	assert.Equal(t, "0.75", a.Add(b).Format(2))
	assert.Equal(t, "1.75", a.Sub(b).Format(2))
	assert.Equal(t, "0.5", b.Neg().Format(1))
	assert.Equal(t, "0.5", b.Abs().Format(1))
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Sign())

	assert.Equal(t, "-0.5", MinFixed(a, b).Format(1))
	assert.Equal(t, "1.25", MaxFixed(b, a).Format(2))
	assert.Equal(t, "2.00", SumFixed(a, a, b).Format(2))
	assert.True(t, SumFixed[WadUnit]().IsZero())
}

func TestFixed_Avg(t *testing.T) {
	x := NewFixedFromInt64[RayUnit](1)
	y := NewFixedFromInt64[RayUnit](3)
	half := MustParseFixed[RayUnit]("0.5")
	assert.Equal(t, "2.0", x.Avg(y, half).Format(1))
}

func TestFixed_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		two := NewFixedFromInt64[WadUnit](2)

		got, err := two.Pow(2)
		require.NoError(t, err)
		assert.Equal(t, "4.0", got.Format(1))

		x := MustParseFixed[PercentUnit]("1.0001")
		got2, err := x.PowDown(2)
		require.NoError(t, err)
		assert.Equal(t, "1.0002", got2.String())

		got2, err = x.PowUp(2)
		require.NoError(t, err)
		assert.Equal(t, "1.0003", got2.String())

		assert.Equal(t, "1.0000", x.MustPow(0).String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := Ray{}.Pow(-1)
		assert.ErrorIs(t, err, errInvalidOperation)

		assert.Panics(t, func() { Percent{}.MustPow(-2) })
	})
}

func TestFixed_Sqrt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := NewFixedFromInt64[PercentUnit](5).Sqrt()
		require.NoError(t, err)
		assert.Equal(t, "2.2361", got.String())

		got2, err := NewFixedFromInt64[WadUnit](4).Sqrt()
		require.NoError(t, err)
		assert.Equal(t, "2.000000000000000000", got2.String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewFixedFromInt64[WadUnit](-4).Sqrt()
		assert.ErrorIs(t, err, errInvalidOperation)
	})
}

func TestFixed_ExpTaylorN(t *testing.T) {
	got, err := NewFixedFromInt64[WadUnit](1).ExpTaylorN(5)
	require.NoError(t, err)
	assert.Equal(t, "2716666666666666665", got.BigInt().String())

	_, err = Wad{}.ExpTaylorN(-1)
	assert.ErrorIs(t, err, errInvalidOperation)
}

func TestConvert(t *testing.T) {
	p := MustParseFixed[PercentUnit]("0.05")

	w := p.ToWad()
	assert.Equal(t, "0.050000000000000000", w.String())
	assert.True(t, w.ToPercent().Equal(p))

	r := p.ToRay()
	assert.Equal(t, "50000000000000000000000000", r.BigInt().String())
	assert.True(t, r.ToPercent().Equal(p))

	// Mixed units
	wad := NewFixedFromInt64[WadUnit](1)
	ray := NewFixedFromInt64[RayUnit](1)
	assert.True(t, wad.Mul(ray.ToWad()).Equal(wad))
	assert.True(t, wad.Mul(NewFixedFromInt64[PercentUnit](1).ToWad()).Equal(wad))
	assert.True(t, Convert[RayUnit](wad).Equal(ray))

	// Precision loss rounds half up
	fine := MustParseFixed[WadUnit]("0.00005")
	assert.Equal(t, "0.0001", fine.ToPercent().String())
}

func TestFixed_Text(t *testing.T) {
	type position struct {
		Rate   Percent `json:"rate"`
		Amount Wad     `json:"amount"`
	}

	t.Run("success", func(t *testing.T) {
		p := position{
			Rate:   MustParseFixed[PercentUnit]("0.05"),
			Amount: MustParseFixed[WadUnit]("1.5"),
		}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"rate":"0.0500","amount":"1.500000000000000000"}`, string(data))

		var got position
		require.NoError(t, json.Unmarshal([]byte(`{"rate":"0.25","amount":"2"}`), &got))
		assert.Equal(t, "2500", got.Rate.BigInt().String())
		assert.Equal(t, "2.0", got.Amount.Format(1))
	})

	t.Run("error", func(t *testing.T) {
		var got position
		err := json.Unmarshal([]byte(`{"rate":"0.00001"}`), &got)
		assert.ErrorIs(t, err, errInvalidDecimal)
	})
}

func TestFixed_Float64(t *testing.T) {
	got, err := MustParseFixed[WadUnit]("1.5").Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-12)
}
