package field

import "fmt"

// Polynomial is a dense univariate polynomial over the ring R.
//
// Coefficients are ordered from lowest to highest degree (e.g. [1, 2, 3] is
// 1 + 2x + 3x^2) and never end in a zero, so the zero polynomial has no
// coefficients at all.
type Polynomial[E any, R Ring[E]] struct {
	ring  R
	inner []E
}

// NewPolynomial reduces each coefficient into the ring and trims trailing
// zeros. The input slice is not retained.
func NewPolynomial[E any, R Ring[E]](ring R, coeffs []E) *Polynomial[E, R] {
	inner := make([]E, len(coeffs))
	for i, c := range coeffs {
		inner[i] = ring.Reduce(c)
	}

	p := &Polynomial[E, R]{ring: ring, inner: inner}
	p.trimTrailingZeros()

	return p
}

// Zero returns the zero polynomial.
func Zero[E any, R Ring[E]](ring R) *Polynomial[E, R] {
	return &Polynomial[E, R]{ring: ring}
}

// Constant returns the degree 0 polynomial c, or zero if c is zero.
func Constant[E any, R Ring[E]](ring R, c E) *Polynomial[E, R] {
	return NewPolynomial(ring, []E{c})
}

// Single returns the monomial c*x^deg.
func Single[E any, R Ring[E]](ring R, c E, deg int) *Polynomial[E, R] {
	if deg < 0 {
		panic("negative degree")
	}

	inner := zeros[E](ring, deg+1)
	inner[deg] = c

	return NewPolynomial(ring, inner)
}

func zeros[E any](ring Ring[E], n int) []E {
	inner := make([]E, n)
	for i := range inner {
		inner[i] = ring.Zero()
	}

	return inner
}

func (p *Polynomial[E, R]) Ring() R {
	return p.ring
}

// Degree returns the degree, or -1 for the zero polynomial.
func (p *Polynomial[E, R]) Degree() int {
	return len(p.inner) - 1
}

func (p *Polynomial[E, R]) IsZero() bool {
	return len(p.inner) == 0
}

// LeadCoeff returns the coefficient of the highest degree, zero for the zero
// polynomial.
func (p *Polynomial[E, R]) LeadCoeff() E {
	if len(p.inner) == 0 {
		return p.ring.Zero()
	}

	return p.inner[len(p.inner)-1]
}

// Coefficient returns the coefficient of x^i.
func (p *Polynomial[E, R]) Coefficient(i int) E {
	if i < 0 || i >= len(p.inner) {
		return p.ring.Zero()
	}

	return p.inner[i]
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *Polynomial[E, R]) Coefficients() []E {
	list := make([]E, len(p.inner))
	copy(list, p.inner)

	return list
}

func (p *Polynomial[E, R]) Copy() *Polynomial[E, R] {
	return &Polynomial[E, R]{ring: p.ring, inner: p.Coefficients()}
}

// Equals compares the canonical coefficients.
func (p *Polynomial[E, R]) Equals(q *Polynomial[E, R]) bool {
	if len(p.inner) != len(q.inner) {
		return false
	}

	for i := range p.inner {
		if !p.ring.Equals(p.inner[i], q.inner[i]) {
			return false
		}
	}

	return true
}

// AddElem adds c*x^deg in place.
func (p *Polynomial[E, R]) AddElem(c E, deg int) {
	if deg < 0 {
		panic("negative degree")
	}

	p.ensureLen(deg + 1)
	p.inner[deg] = p.ring.Add(p.inner[deg], p.ring.Reduce(c))
	p.trimTrailingZeros()
}

func (p *Polynomial[E, R]) ensureLen(n int) {
	if len(p.inner) >= n {
		return
	}

	grown := zeros[E](p.ring, n)
	copy(grown, p.inner)
	p.inner = grown
}

func (p *Polynomial[E, R]) trimTrailingZeros() {
	i := len(p.inner) - 1
	for i >= 0 && isZero[E](p.ring, p.inner[i]) {
		i--
	}

	p.inner = p.inner[:i+1]
}

// Add returns p + q.
func (p *Polynomial[E, R]) Add(q *Polynomial[E, R]) *Polynomial[E, R] {
	c := p.Copy()
	c.AddInPlace(q)

	return c
}

// AddInPlace sets p = p + q.
func (p *Polynomial[E, R]) AddInPlace(q *Polynomial[E, R]) {
	p.ensureLen(len(q.inner))
	for i, c := range q.inner {
		p.inner[i] = p.ring.Add(p.inner[i], c)
	}

	p.trimTrailingZeros()
}

// Sub returns p - q.
func (p *Polynomial[E, R]) Sub(q *Polynomial[E, R]) *Polynomial[E, R] {
	c := p.Copy()
	c.SubInPlace(q)

	return c
}

// SubInPlace sets p = p - q.
func (p *Polynomial[E, R]) SubInPlace(q *Polynomial[E, R]) {
	p.ensureLen(len(q.inner))
	for i, c := range q.inner {
		p.inner[i] = p.ring.Sub(p.inner[i], c)
	}

	p.trimTrailingZeros()
}

// Neg returns -p. Negation can't create or remove a zero, so no trimming is
// needed.
func (p *Polynomial[E, R]) Neg() *Polynomial[E, R] {
	inner := make([]E, len(p.inner))
	for i, c := range p.inner {
		inner[i] = p.ring.Neg(c)
	}

	return &Polynomial[E, R]{ring: p.ring, inner: inner}
}

// Mul returns p * q by schoolbook convolution.
func (p *Polynomial[E, R]) Mul(q *Polynomial[E, R]) *Polynomial[E, R] {
	if p.IsZero() || q.IsZero() {
		return Zero[E](p.ring)
	}

	r := p.ring
	out := zeros[E](r, len(p.inner)+len(q.inner)-1)

	// out[i+j] += a[i] * b[j]
	for i, ai := range p.inner {
		for j, bj := range q.inner {
			out[i+j] = r.Add(out[i+j], r.Mul(ai, bj))
		}
	}

	prod := &Polynomial[E, R]{ring: r, inner: out}
	prod.trimTrailingZeros()

	return prod
}

// MulInPlace sets p = p * q. It is safe for p and q to be the same
// polynomial.
func (p *Polynomial[E, R]) MulInPlace(q *Polynomial[E, R]) {
	p.inner = p.Mul(q).inner
}

// MulScalar returns s * p.
func (p *Polynomial[E, R]) MulScalar(s E) *Polynomial[E, R] {
	inner := make([]E, len(p.inner))
	for i, c := range p.inner {
		inner[i] = p.ring.Mul(c, s)
	}

	c := &Polynomial[E, R]{ring: p.ring, inner: inner}
	c.trimTrailingZeros()

	return c
}

// Evaluate returns p(x) using Horner's rule.
func (p *Polynomial[E, R]) Evaluate(x E) E {
	r := p.ring

	result := r.Zero()
	for i := len(p.inner) - 1; i >= 0; i-- {
		result = r.Add(p.inner[i], r.Mul(x, result))
	}

	return result
}

// GoString prints the ring and raw coefficients, for debugging.
func (p *Polynomial[E, R]) GoString() string {
	return fmt.Sprintf("Polynomial{ring: %v, inner: %v}", p.ring, p.inner)
}
