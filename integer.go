package evmmath

import (
	"fmt"
	"math/big"
	"sync"
)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// It covers every power needed to square a ray (10^54) with room to spare.
var bpow10 = func() [64]*big.Int {
	var cache [64]*big.Int
	ten := big.NewInt(10)
	cache[0] = big.NewInt(1)
	for i := 1; i < len(cache); i++ {
		cache[i] = new(big.Int).Mul(cache[i-1], ten)
	}
	return cache
}()

// bone is the integer 1. It must never be modified.
var bone = big.NewInt(1)

// Pow10 returns 10^power.
//
// Pow10 panics if power is negative.
func Pow10(power int) *big.Int {
	switch {
	case power < 0:
		panic(fmt.Sprintf("Pow10(%v) failed: negative power", power))
	case power < len(bpow10):
		return new(big.Int).Set(bpow10[power])
	}
	e := big.NewInt(int64(power))
	return new(big.Int).Exp(bpow10[1], e, nil)
}

// pow10 is like [Pow10], but it may return a cached value.
// The result must not be modified.
func pow10(power int) *big.Int {
	if 0 <= power && power < len(bpow10) {
		return bpow10[power]
	}
	return Pow10(power)
}

// Abs returns |x|.
func Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

// Min returns the smallest of x and others.
// If others is empty, Min returns x.
func Min(x *big.Int, others ...*big.Int) *big.Int {
	m := x
	for _, y := range others {
		if m.Cmp(y) > 0 {
			m = y
		}
	}
	return new(big.Int).Set(m)
}

// Max returns the largest of x and others.
// If others is empty, Max returns x.
func Max(x *big.Int, others ...*big.Int) *big.Int {
	m := x
	for _, y := range others {
		if m.Cmp(y) < 0 {
			m = y
		}
	}
	return new(big.Int).Set(m)
}

// Sum returns initial + others[0] + others[1] + ...
func Sum(initial *big.Int, others []*big.Int) *big.Int {
	z := new(big.Int).Set(initial)
	for _, y := range others {
		z.Add(z, y)
	}
	return z
}

// ApproxEqAbs returns true if |y - x| <= tolerance.
// A nil tolerance requires x and y to be equal.
func ApproxEqAbs(x, y, tolerance *big.Int) bool {
	if tolerance == nil {
		return x.Cmp(y) == 0
	}
	d := getBint()
	defer putBint(d)
	d.Sub(y, x)
	d.Abs(d)
	return d.Cmp(tolerance) <= 0
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *big.Int {
	return bpool.Get().(*big.Int)
}

// putBint returns the *big.Int into the pool.
func putBint(b *big.Int) {
	bpool.Put(b)
}
