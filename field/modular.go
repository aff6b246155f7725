package field

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// modulus carries the arithmetic shared by Z/nZ and Z/pZ. Elements are int64
// values kept in [0, n).
type modulus struct {
	n uint64
}

func newModulus(n uint64) (modulus, error) {
	if n == 0 {
		return modulus{}, ErrZeroModulus
	}

	if n > math.MaxInt64 {
		return modulus{}, ErrModulusTooLarge
	}

	return modulus{n: n}, nil
}

// Modulus returns n.
func (m modulus) Modulus() uint64 {
	return m.n
}

func (modulus) Zero() int64 { return 0 }

func (m modulus) One() int64 { return m.Reduce(1) }

func (m modulus) Reduce(a int64) int64 {
	r := a % int64(m.n)
	if r < 0 {
		r += int64(m.n)
	}

	return r
}

func (m modulus) Add(a, b int64) int64 {
	// both are below 2^63, the sum can't overflow a uint64.
	tmp := uint64(m.Reduce(a)) + uint64(m.Reduce(b))
	if tmp >= m.n {
		tmp -= m.n
	}

	return int64(tmp)
}

func (m modulus) Neg(a int64) int64 {
	r := m.Reduce(a)
	if r == 0 {
		return 0
	}

	return int64(m.n) - r
}

func (m modulus) Sub(a, b int64) int64 { return sub[int64](m, a, b) }

// Mul returns a * b (mod n) using a 128-bit intermediate product.
func (m modulus) Mul(a, b int64) int64 {
	ua, ub := uint64(m.Reduce(a)), uint64(m.Reduce(b))
	if ua == 0 || ub == 0 {
		return 0
	}

	return int64(mulMod(ua, ub, m.n))
}

func mulMod(a, b, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// Pow returns base^exp (mod n).
//
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (m modulus) Pow(base int64, exp uint64) int64 {
	b := uint64(m.Reduce(base))

	x := uint64(1) % m.n
	for exp > 0 {
		if exp%2 == 1 {
			x = mulMod(x, b, m.n)
		}

		b = mulMod(b, b, m.n)
		exp /= 2
	}

	return int64(x)
}

func (m modulus) Equals(a, b int64) bool {
	return m.Reduce(a) == m.Reduce(b)
}

// ParseElem reads a signed decimal and reduces it.
func (m modulus) ParseElem(s string) (int64, error) {
	v, err := parseInt(s)
	if err != nil {
		return 0, err
	}

	return m.Reduce(v), nil
}

func (m modulus) FormatElem(e int64) string {
	return strconv.FormatInt(m.Reduce(e), 10)
}

func (m modulus) String() string {
	return fmt.Sprintf("Z/%dZ", m.n)
}

// IntegersModuloN is the ring Z/nZ. n may be composite, so this is not a Field.
type IntegersModuloN struct {
	modulus
}

// NewIntegersModuloN returns Z/nZ for 0 < n < 2^63.
func NewIntegersModuloN(n uint64) (IntegersModuloN, error) {
	m, err := newModulus(n)
	if err != nil {
		return IntegersModuloN{}, err
	}

	return IntegersModuloN{modulus: m}, nil
}

// IntegersModuloP is the field Z/pZ. p must be prime for the field laws to
// hold.
type IntegersModuloP struct {
	modulus
}

// NewIntegersModuloPUnchecked trusts the caller that p is prime. It panics
// when p is zero or does not fit in 63 bits, as NewIntegersModuloP would fail.
func NewIntegersModuloPUnchecked(p uint64) IntegersModuloP {
	m, err := newModulus(p)
	if err != nil {
		panic(err)
	}

	return IntegersModuloP{modulus: m}
}

// NewIntegersModuloP returns Z/pZ, failing with ErrNotPrime when p is not prime.
func NewIntegersModuloP(p uint64) (IntegersModuloP, error) {
	m, err := newModulus(p)
	if err != nil {
		return IntegersModuloP{}, err
	}

	if !IsPrime(p) {
		return IntegersModuloP{}, ErrNotPrime
	}

	return IntegersModuloP{modulus: m}, nil
}

// Prime returns p.
func (f IntegersModuloP) Prime() uint64 {
	return f.n
}

func (f IntegersModuloP) Inverse(a int64) (int64, error) {
	a = f.Reduce(a)
	if a == 0 {
		return 0, ErrDivisionByZero
	}

	gcd, s, _, err := ExtendedEuclideanInt(a, int64(f.n))
	if err != nil {
		return 0, err
	}

	if gcd != 1 {
		return 0, fmt.Errorf("%w: %d has no inverse modulo %d", ErrNotPrime, a, f.n)
	}

	return f.Reduce(s), nil
}

func (f IntegersModuloP) Div(a, b int64) (int64, error) { return div[int64](f, a, b) }

// Generator returns a primitive root of the multiplicative group of Z/pZ.
func (f IntegersModuloP) Generator() (int64, error) {
	// the search starts at 3, which is zero modulo 3.
	if f.n <= 3 {
		return int64(f.n - 1), nil
	}

	g, _, err := ring.PrimitiveRoot(f.n, nil)
	if err != nil {
		return 0, err
	}

	return int64(g), nil
}

// IsPrime is a deterministic trial division over 2, 3 and the candidates
// 6k+5, 6k+7 up to the square root of p.
func IsPrime(p uint64) bool {
	if p <= 1 {
		return false
	}

	if p == 2 || p == 3 {
		return true
	}

	if p%2 == 0 || p%3 == 0 {
		return false
	}

	limit := isqrt(p)
	for i := uint64(5); i <= limit; i += 6 {
		if p%i == 0 || p%(i+2) == 0 {
			return false
		}
	}

	return true
}

// isqrt returns floor(sqrt(n)). The float estimate can be off by one near
// perfect squares, so it is corrected in integers.
func isqrt(n uint64) uint64 {
	r := min(uint64(math.Sqrt(float64(n))), math.MaxUint32)
	for r > 0 && r*r > n {
		r--
	}

	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}

	return r
}
