package field

import (
	"fmt"
	"strconv"
)

// Integers is the ring of signed machine integers. Overflow wraps.
type Integers struct{}

func (Integers) Zero() int64 { return 0 }
func (Integers) One() int64  { return 1 }

func (Integers) Add(a, b int64) int64 { return a + b }
func (Integers) Neg(a int64) int64    { return -a }
func (Integers) Mul(a, b int64) int64 { return a * b }

func (z Integers) Sub(a, b int64) int64 { return sub[int64](z, a, b) }

func (Integers) Reduce(a int64) int64 { return a }

func (Integers) Equals(a, b int64) bool { return a == b }

// EuclideanFunction is the absolute value.
func (Integers) EuclideanFunction(a int64) (uint64, bool) {
	return absUint64(a), true
}

// EuclideanDivision rounds so that the remainder is never negative:
// 48 = -1*(-30) + 18 and -30 = -2*18 + 6.
func (Integers) EuclideanDivision(a, b int64) (int64, int64, error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}

	q, r := divEuclid(a, b)

	return q, r, nil
}

func (Integers) ParseElem(s string) (int64, error) {
	return parseInt(s)
}

func (Integers) FormatElem(e int64) string {
	return strconv.FormatInt(e, 10)
}

func (Integers) String() string { return "Z" }

// divEuclid panics on b == 0, callers check first.
func divEuclid(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		if b > 0 {
			q--
			r += b
		} else {
			q++
			r -= b
		}
	}

	return q, r
}

func absUint64(a int64) uint64 {
	if a < 0 {
		// correct for math.MinInt64 as well.
		return uint64(-a)
	}

	return uint64(a)
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrParse, s)
	}

	return v, nil
}
