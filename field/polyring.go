package field

import "fmt"

// PolyRing is the ring R[x] of polynomials over another ring. Since it is a
// Ring itself, rings can be nested: PolyRing over PolyRing over Integers is
// Z[x][x].
type PolyRing[E any, R Ring[E]] struct {
	base R
}

// NewPolyRing constructs R[x] over the provided coefficient ring.
func NewPolyRing[E any, R Ring[E]](base R) PolyRing[E, R] {
	return PolyRing[E, R]{base: base}
}

// Base returns the coefficient ring.
func (pr PolyRing[E, R]) Base() R { return pr.base }

func (pr PolyRing[E, R]) Zero() *Polynomial[E, R] {
	return Zero[E](pr.base)
}

func (pr PolyRing[E, R]) One() *Polynomial[E, R] {
	return Constant[E](pr.base, pr.base.One())
}

func (pr PolyRing[E, R]) Add(a, b *Polynomial[E, R]) *Polynomial[E, R] { return a.Add(b) }
func (pr PolyRing[E, R]) Neg(a *Polynomial[E, R]) *Polynomial[E, R]    { return a.Neg() }
func (pr PolyRing[E, R]) Mul(a, b *Polynomial[E, R]) *Polynomial[E, R] { return a.Mul(b) }
func (pr PolyRing[E, R]) Sub(a, b *Polynomial[E, R]) *Polynomial[E, R] { return a.Sub(b) }

// Reduce re-canonicalizes every coefficient. nil is read as zero.
func (pr PolyRing[E, R]) Reduce(a *Polynomial[E, R]) *Polynomial[E, R] {
	if a == nil {
		return pr.Zero()
	}

	return NewPolynomial(pr.base, a.inner)
}

func (pr PolyRing[E, R]) Equals(a, b *Polynomial[E, R]) bool {
	return pr.Reduce(a).Equals(pr.Reduce(b))
}

// FormatElem parenthesises the inner polynomial so nested coefficients stay
// readable, e.g. "(x + 1)x^2".
func (pr PolyRing[E, R]) FormatElem(a *Polynomial[E, R]) string {
	return "(" + pr.Reduce(a).String() + ")"
}

func (pr PolyRing[E, R]) String() string {
	return fmt.Sprintf("%v[x]", pr.base)
}

// EuclideanPolyRing is F[x] for a field F, where long division makes the ring
// Euclidean.
type EuclideanPolyRing[E any, F Field[E]] struct {
	PolyRing[E, F]
}

func NewEuclideanPolyRing[E any, F Field[E]](f F) EuclideanPolyRing[E, F] {
	return EuclideanPolyRing[E, F]{PolyRing: NewPolyRing[E](f)}
}

// EuclideanFunction is the degree, undefined for the zero polynomial.
func (pr EuclideanPolyRing[E, F]) EuclideanFunction(a *Polynomial[E, F]) (uint64, bool) {
	if a == nil || a.IsZero() {
		return 0, false
	}

	return uint64(a.Degree()), true
}

func (pr EuclideanPolyRing[E, F]) EuclideanDivision(a, b *Polynomial[E, F]) (q, r *Polynomial[E, F], err error) {
	return LongDiv(pr.Reduce(a), pr.Reduce(b))
}

// LongDiv returns q, r such that a = q*d + r, where r is zero or has a
// smaller degree than d. It fails with ErrDivisionByZero when d is zero.
//
// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
func LongDiv[E any, F Field[E]](a, d *Polynomial[E, F]) (q, r *Polynomial[E, F], err error) {
	if d.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	fld := a.ring
	m := d.Degree()

	// fails only for a non-prime modulus passed to NewIntegersModuloPUnchecked.
	u, err := fld.Inverse(d.LeadCoeff())
	if err != nil {
		return nil, nil, err
	}

	q = &Polynomial[E, F]{ring: fld, inner: make([]E, 0, len(a.inner))}
	r = a.Copy()

	for !r.IsZero() && r.Degree() >= m {
		n := r.Degree()

		t := Single[E](fld, fld.Mul(r.LeadCoeff(), u), n-m)
		q.AddInPlace(t)
		r.SubInPlace(t.Mul(d))

		// exact rings cancel the leading term, floats may leave a residue.
		if r.Degree() >= n {
			r.inner[n] = fld.Zero()
			r.trimTrailingZeros()
		}
	}

	return q, r, nil
}

// PolyProduct multiplies a slice of polynomials.
func PolyProduct[E any, R Ring[E]](ring R, polys []*Polynomial[E, R]) *Polynomial[E, R] {
	m := Constant[E](ring, ring.One())
	for _, p := range polys {
		m.MulInPlace(p)
	}

	return m
}

// FromRoots computes \prod (x - r_i) without building the linear factors.
func FromRoots[E any, R Ring[E]](ring R, roots []E) *Polynomial[E, R] {
	coeffs := zeros[E](ring, len(roots)+1)
	coeffs[0] = ring.One()

	deg := 0
	for _, root := range roots {
		neg := ring.Neg(ring.Reduce(root))
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = ring.Add(coeffs[j+1], coeffs[j])
			// new[j]   = old[j] * (-r)
			coeffs[j] = ring.Mul(coeffs[j], neg)
		}
		deg++
	}

	return NewPolynomial(ring, coeffs)
}
