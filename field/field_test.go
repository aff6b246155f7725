package field

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// largePrime is above 2^62, so products of two elements overflow 64 bits.
const largePrime = 9191248642791733759

func TestReals(t *testing.T) {
	a := assert.New(t)

	r := Reals{}
	a.Equal(2.5, r.Add(1, 1.5))
	a.Equal(-0.5, r.Sub(1, 1.5))
	a.Equal(1.5, r.Mul(3, 0.5))

	inv, err := r.Inverse(4)
	a.NoError(err)
	a.Equal(0.25, inv)

	_, err = r.Inverse(0)
	a.ErrorIs(err, ErrDivisionByZero)

	q, err := r.Div(3, 2)
	a.NoError(err)
	a.Equal(1.5, q)

	_, err = r.Div(3, 0)
	a.ErrorIs(err, ErrDivisionByZero)

	a.Equal("0.5", r.FormatElem(0.5))
	a.Equal("-3", r.FormatElem(-3))
	a.Equal("R", r.String())
}

func TestIntegersEuclideanDivision(t *testing.T) {
	a := assert.New(t)
	z := Integers{}

	tests := []struct {
		a, b, q, r int64
	}{
		{48, -30, -1, 18},
		{-30, 18, -2, 6},
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{-7, -2, 4, 1},
		{6, 3, 2, 0},
		{0, 5, 0, 0},
	}

	for _, tt := range tests {
		q, r, err := z.EuclideanDivision(tt.a, tt.b)
		a.NoError(err)
		a.Equal(tt.q, q, "quotient of %d / %d", tt.a, tt.b)
		a.Equal(tt.r, r, "remainder of %d / %d", tt.a, tt.b)
		a.Equal(tt.a, q*tt.b+r)

		rs, _ := z.EuclideanFunction(r)
		bs, _ := z.EuclideanFunction(tt.b)
		a.Less(rs, bs)
	}

	_, _, err := z.EuclideanDivision(1, 0)
	a.ErrorIs(err, ErrDivisionByZero)

	size, ok := z.EuclideanFunction(math.MinInt64)
	a.True(ok)
	a.Equal(uint64(1)<<63, size)
}

func TestModularConstruction(t *testing.T) {
	a := assert.New(t)

	_, err := NewIntegersModuloN(0)
	a.ErrorIs(err, ErrZeroModulus)

	_, err = NewIntegersModuloN(math.MaxInt64 + 1)
	a.ErrorIs(err, ErrModulusTooLarge)

	zn, err := NewIntegersModuloN(6)
	a.NoError(err)
	a.Equal("Z/6Z", zn.String())
	a.Equal(uint64(6), zn.Modulus())

	_, err = NewIntegersModuloP(6)
	a.ErrorIs(err, ErrNotPrime)

	_, err = NewIntegersModuloP(0)
	a.ErrorIs(err, ErrZeroModulus)
}

func TestModularUncheckedBounds(t *testing.T) {
	a := assert.New(t)

	a.PanicsWithError(ErrZeroModulus.Error(), func() { NewIntegersModuloPUnchecked(0) })
	a.PanicsWithError(ErrModulusTooLarge.Error(), func() { NewIntegersModuloPUnchecked(math.MaxInt64 + 1) })
	a.PanicsWithError(ErrModulusTooLarge.Error(), func() { NewIntegersModuloPUnchecked(math.MaxUint64) })

	f := NewIntegersModuloPUnchecked(largePrime)
	a.Equal(uint64(largePrime), f.Prime())
	a.Equal(int64(largePrime-1), f.Neg(1))

	// the primality check is the only one skipped.
	a.NotPanics(func() { NewIntegersModuloPUnchecked(8) })
}

func TestModularOps(t *testing.T) {
	a := assert.New(t)

	z5, err := NewIntegersModuloN(5)
	require.NoError(t, err)

	a.Equal(int64(2), z5.Reduce(7))
	a.Equal(int64(3), z5.Reduce(-7))
	a.Equal(int64(1), z5.Add(3, 3))
	a.Equal(int64(2), z5.Neg(3))
	a.Equal(int64(0), z5.Neg(5))
	a.Equal(int64(4), z5.Sub(1, 2))
	a.Equal(int64(1), z5.Mul(3, 2))
	a.Equal(int64(4), z5.Mul(-3, 2))
	a.True(z5.Equals(-1, 4))

	v, err := z5.ParseElem("-8")
	a.NoError(err)
	a.Equal(int64(2), v)

	_, err = z5.ParseElem("2.5")
	a.ErrorIs(err, ErrParse)

	z1, err := NewIntegersModuloN(1)
	require.NoError(t, err)
	a.Equal(int64(0), z1.One())
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f := NewIntegersModuloPUnchecked(largePrime)
	mod := new(big.Int).SetUint64(largePrime)

	n := int64(math.MaxInt64)
	m := int64(1<<60 + 312)

	want := new(big.Int).Mul(big.NewInt(n), big.NewInt(m))
	want.Mod(want, mod)
	a.Equal(want.Int64(), f.Mul(n, m))

	sum := new(big.Int).Add(big.NewInt(f.Reduce(n)), big.NewInt(largePrime-1))
	sum.Mod(sum, mod)
	a.Equal(sum.Int64(), f.Add(n, largePrime-1))

	pow := new(big.Int).Exp(big.NewInt(n), big.NewInt(1<<40), mod)
	a.Equal(pow.Int64(), f.Pow(n, 1<<40))

	res := f.Mul(n, mustInverse(t, f, n))
	a.Equal(int64(1), res)
}

func mustInverse(t *testing.T, f IntegersModuloP, e int64) int64 {
	inv, err := f.Inverse(e)
	require.NoError(t, err)

	return inv
}

func TestModularInverse(t *testing.T) {
	a := assert.New(t)

	f, err := NewIntegersModuloP(7)
	require.NoError(t, err)

	for e := int64(1); e < 7; e++ {
		a.Equal(int64(1), f.Mul(e, mustInverse(t, f, e)))
	}

	_, err = f.Inverse(14)
	a.ErrorIs(err, ErrDivisionByZero)

	q, err := f.Div(3, 5)
	a.NoError(err)
	a.Equal(int64(2), q) // 2 * 5 = 10 = 3 (mod 7)

	_, err = NewIntegersModuloPUnchecked(8).Inverse(4)
	a.ErrorIs(err, ErrNotPrime)
}

var primesUpTo127 = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89,
	97, 101, 103, 107, 109, 113, 127,
}

func TestPrimeDetection(t *testing.T) {
	a := assert.New(t)

	for _, p := range primesUpTo127 {
		_, err := NewIntegersModuloP(p)
		a.NoError(err, "%d is prime", p)
	}

	for _, n := range []uint64{0, 1, 4, 6, 8, 9, 25, 49, 121, 333, 7909} {
		_, err := NewIntegersModuloP(n)
		a.Error(err, "%d is not prime", n)
	}

	_, err := NewIntegersModuloP(7793)
	a.NoError(err)

	// squares of primes sit right on the trial division bound.
	a.False(IsPrime(65521 * 65521))
	a.False(IsPrime(4294967291 * 2))
	a.True(IsPrime(4294967291))

	for n := uint64(0); n < 5000; n++ {
		a.Equal(new(big.Int).SetUint64(n).ProbablyPrime(20), IsPrime(n), "IsPrime(%d)", n)
	}
}

func TestIsqrt(t *testing.T) {
	a := assert.New(t)

	for _, n := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1 << 52, 1<<52 + 1, math.MaxUint64} {
		r := isqrt(n)
		a.LessOrEqual(r*r, n)

		if r < math.MaxUint32 {
			a.Greater((r+1)*(r+1), n)
		}
	}

	a.Equal(uint64(math.MaxUint32), isqrt(math.MaxUint64))
}

func TestGenerator(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{2, 3, 5, 7, 157, 7793, 65537} {
		f, err := NewIntegersModuloP(p)
		require.NoError(t, err)

		g, err := f.Generator()
		require.NoError(t, err)
		a.NotZero(f.Reduce(g), "generator of Z/%dZ", p)

		if p == 2 {
			a.Equal(int64(1), g)
			continue
		}

		for _, q := range primeFactors(p - 1) {
			a.NotEqual(int64(1), f.Pow(g, (p-1)/q), "%d generates Z/%dZ*", g, p)
		}
	}
}

func primeFactors(n uint64) []uint64 {
	var factors []uint64

	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			factors = append(factors, d)
			for n%d == 0 {
				n /= d
			}
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

func FuzzInverse(f *testing.F) {
	testcases := []int64{1, 54347, 4534523, 021310, 1<<63 - 1, -5}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld := NewIntegersModuloPUnchecked(largePrime)

	f.Fuzz(func(t *testing.T, num int64) {
		if fld.Reduce(num) == 0 {
			if _, err := fld.Inverse(num); err == nil {
				t.Fatalf("expected error for %d", num)
			}

			return
		}

		inv, err := fld.Inverse(num)
		if err != nil {
			t.Fatal(err)
		}

		if res := fld.Mul(num, inv); res != 1 {
			t.Fatalf("expected 1, got %d", res)
		}

		if s := fld.Add(fld.Neg(num), num); s != 0 {
			t.Fatalf("expected 0, got %d", s)
		}
	})
}

func BenchmarkMulMod(b *testing.B) {
	f := NewIntegersModuloPUnchecked(largePrime)

	e1 := int64((1 << 63) - 2)
	e2 := int64((1 << 60) + 312)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Mul(e1, e2)
	}
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(4294967291)
	}
}
