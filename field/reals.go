package field

import (
	"fmt"
	"strconv"
)

// Reals is the field of 64-bit floating point numbers. Arithmetic is exact
// only as far as float64 is.
type Reals struct{}

func (Reals) Zero() float64 { return 0 }
func (Reals) One() float64  { return 1 }

func (Reals) Add(a, b float64) float64 { return a + b }
func (Reals) Neg(a float64) float64    { return -a }
func (Reals) Mul(a, b float64) float64 { return a * b }

func (r Reals) Sub(a, b float64) float64 { return sub[float64](r, a, b) }

func (Reals) Reduce(a float64) float64 { return a }

func (Reals) Equals(a, b float64) bool { return a == b }

func (Reals) Inverse(a float64) (float64, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}

	return 1 / a, nil
}

func (r Reals) Div(a, b float64) (float64, error) { return div[float64](r, a, b) }

func (Reals) ParseElem(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad real %q", ErrParse, s)
	}

	return v, nil
}

// FormatElem prints the shortest decimal that reads back as the same value.
func (Reals) FormatElem(e float64) string {
	return strconv.FormatFloat(e, 'f', -1, 64)
}

func (Reals) String() string { return "R" }
