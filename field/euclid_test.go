package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEEAInt(t *testing.T) {
	a := assert.New(t)

	gcd, s, tt, err := ExtendedEuclideanInt(48, -30)
	a.NoError(err)
	a.Equal(uint64(6), gcd)
	a.Equal(int64(2), s)
	a.Equal(int64(3), tt)

	_, _, _, err = ExtendedEuclideanInt(0, 0)
	a.ErrorIs(err, ErrBothZero)

	// fast paths
	gcd, s, tt, err = ExtendedEuclideanInt(-12, 0)
	a.NoError(err)
	a.Equal(uint64(12), gcd)
	a.Equal(int64(-1), s)
	a.Equal(int64(0), tt)

	gcd, s, tt, err = ExtendedEuclideanInt(12, -4)
	a.NoError(err)
	a.Equal(uint64(4), gcd)
	a.Equal(int64(0), s)
	a.Equal(int64(-1), tt)

	gcd, _, _, err = ExtendedEuclideanInt(math.MinInt64, 0)
	a.NoError(err)
	a.Equal(uint64(1)<<63, gcd)
}

func TestEEAIntMatchesGeneric(t *testing.T) {
	a := assert.New(t)
	z := Integers{}

	for x := int64(-40); x <= 40; x++ {
		for y := int64(-40); y <= 40; y++ {
			g, s, tt, err := ExtendedEuclidean[int64](z, x, y)
			gi, si, ti, erri := ExtendedEuclideanInt(x, y)

			if x == 0 && y == 0 {
				a.ErrorIs(err, ErrBothZero)
				a.ErrorIs(erri, ErrBothZero)

				continue
			}

			require.NoError(t, err)
			require.NoError(t, erri)
			a.Equal(g, s*x+tt*y, "generic bezout for %d, %d", x, y)
			a.Equal(int64(gi), si*x+ti*y, "int bezout for %d, %d", x, y)

			if g < 0 {
				g, s, tt = -g, -s, -tt
			}

			a.Equal(uint64(g), gi)
			a.Equal(s, si)
			a.Equal(tt, ti)
			a.Equal(uint64(gcdNaive(x, y)), gi)
		}
	}
}

func gcdNaive(a, b int64) int64 {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func TestEEAPolynomialReals(t *testing.T) {
	a := assert.New(t)

	pr := NewEuclideanPolyRing[float64](Reals{})

	// (x - 1)(x + 2) and (x - 1)(x + 3)
	p := NewPolynomial(Reals{}, []float64{-2, 1, 1})
	q := NewPolynomial(Reals{}, []float64{-3, 2, 1})

	g, s, tt, err := ExtendedEuclidean[*Polynomial[float64, Reals]](pr, p, q)
	a.NoError(err)
	a.Equal(1, g.Degree())
	a.True(s.Mul(p).Add(tt.Mul(q)).Equals(g))

	a.Equal([]float64{1, -1}, g.Coefficients())
	a.Equal([]float64{1}, s.Coefficients())
	a.Equal([]float64{-1}, tt.Coefficients())

	_, _, _, err = ExtendedEuclidean[*Polynomial[float64, Reals]](pr, pr.Zero(), pr.Zero())
	a.ErrorIs(err, ErrBothZero)
}

func TestEEAPolynomialShortcuts(t *testing.T) {
	a := assert.New(t)

	f := mustPrimeField(t, 7)
	pr := NewEuclideanPolyRing[int64](f)

	p := NewPolynomial(f, []int64{1, 2, 3})

	g, s, tt, err := ExtendedEuclidean[*Polynomial[int64, IntegersModuloP]](pr, p, pr.Zero())
	a.NoError(err)
	a.True(g.Equals(p))
	a.True(s.Equals(pr.One()))
	a.True(tt.IsZero())

	// p divides p*(x+1), so the first remainder is zero.
	multiple := p.Mul(NewPolynomial(f, []int64{1, 1}))
	g, s, tt, err = ExtendedEuclidean[*Polynomial[int64, IntegersModuloP]](pr, multiple, p)
	a.NoError(err)
	a.True(g.Equals(p))
	a.True(s.IsZero())
	a.True(tt.Equals(pr.One()))
}

func FuzzEEAPolynomial(f *testing.F) {
	f.Add(int64(1), int64(2), 5, 3)
	f.Add(int64(7), int64(7), 4, 4)
	f.Add(int64(0), int64(3), 0, 6)

	fld := mustPrimeField(f, 65537)
	pr := NewEuclideanPolyRing[int64](fld)

	f.Fuzz(func(t *testing.T, seedA, seedB int64, degA, degB int) {
		p := randomPolynomial(fld, seedA, abs(degA)%32)
		q := randomPolynomial(fld, seedB, abs(degB)%32)

		g, s, tt, err := ExtendedEuclidean[*Polynomial[int64, IntegersModuloP]](pr, p, q)
		if p.IsZero() && q.IsZero() {
			if err == nil {
				t.Fatal("expected an error for two zero polynomials")
			}

			return
		}

		if err != nil {
			t.Fatal(err)
		}

		if !s.Mul(p).Add(tt.Mul(q)).Equals(g) {
			t.Fatalf("s*a + t*b != gcd for a=%v b=%v", p, q)
		}

		// the gcd divides both inputs.
		for _, x := range []*Polynomial[int64, IntegersModuloP]{p, q} {
			_, r, err := LongDiv(x, g)
			if err != nil {
				t.Fatal(err)
			}

			if !r.IsZero() {
				t.Fatalf("%v does not divide %v", g, x)
			}
		}
	})
}

func BenchmarkEEA(b *testing.B) {
	f := NewIntegersModuloPUnchecked(largePrime)
	pr := NewEuclideanPolyRing[int64](f)

	p1 := randomPolynomial(f, largePrime/4, 513)
	p2 := randomPolynomial(f, largePrime/7, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = ExtendedEuclidean[*Polynomial[int64, IntegersModuloP]](pr, p1, p2)
	}
}
