package field

import "errors"

var (
	ErrPointsMismatch = errors.New("points size mismatch")
	ErrNonUniqueXs    = errors.New("non-unique x values")
)

// Interpolate returns the polynomial of degree below len(xs) passing through
// every (xs[i], ys[i]).
//
// Interpolation code follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// It is O(n^2) in total:
// 1. Create m(x) = \prod (x - x_i).
// 2. For each i, q_i(x) = m(x) / (x - x_i) by synthetic division.
// 3. l_i = q_i * q_i(x_i)^-1, so that l_i(x_j) is 1 when i = j and 0 otherwise.
// 4. Sum all l_i * y_i.
func Interpolate[E any, F Field[E]](f F, xs, ys []E) (*Polynomial[E, F], error) {
	if err := validateInterpolationPoints[E](f, xs, ys); err != nil {
		return nil, err
	}

	m := FromRoots[E](f, xs)

	sum := Zero[E](f)
	for i, x := range xs {
		qi := divideByRoot(m, x)

		sinv, err := f.Inverse(qi.Evaluate(x))
		if err != nil {
			return nil, err
		}

		sum.AddInPlace(qi.MulScalar(f.Mul(sinv, ys[i])))
	}

	return sum, nil
}

// divideByRoot divides m by (x - u). This is quicker than the long division
// method since the divisor is monic of degree 1, and u is known to be a root.
func divideByRoot[E any, R Ring[E]](m *Polynomial[E, R], u E) *Polynomial[E, R] {
	r := m.ring
	if len(m.inner) < 2 {
		return Zero[E](r)
	}

	rem := m.Coefficients()
	qinner := make([]E, len(rem)-1)

	for i := len(rem) - 1; i > 0; i-- {
		qinner[i-1] = rem[i]
		rem[i-1] = r.Add(rem[i-1], r.Mul(rem[i], u))
	}

	return NewPolynomial(r, qinner)
}

func validateInterpolationPoints[E any](r Ring[E], xs, ys []E) error {
	if len(xs) != len(ys) {
		return ErrPointsMismatch
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if r.Equals(xs[i], xs[j]) {
				return ErrNonUniqueXs
			}
		}
	}

	return nil
}
