package field

// ExtendedEuclidean returns gcd, s, t such that s*a + t*b = gcd, where gcd is
// the last non-zero remainder of the Euclidean algorithm. gcd is only
// determined up to a unit: it is not normalised to be positive or monic.
//
// It fails with ErrBothZero when a and b are both zero.
func ExtendedEuclidean[E any, R EuclideanRing[E]](ring R, a, b E) (gcd, s, t E, err error) {
	zero, one := ring.Zero(), ring.One()

	if isZero[E](ring, b) {
		if isZero[E](ring, a) {
			return zero, zero, zero, ErrBothZero
		}

		return a, one, zero, nil
	}

	if _, rem := euclideanDivision(ring, a, b); isZero[E](ring, rem) {
		return b, zero, one, nil
	}

	// Invariants:
	//   x = s1*a + t1*b
	//   y = s2*a + t2*b
	x, y := a, b
	s1, s2 := one, zero
	t1, t2 := zero, one

	for {
		q, r := euclideanDivision(ring, x, y)
		if isZero[E](ring, r) {
			break
		}

		if !smaller(ring, r, y) {
			panic("euclidean division did not reduce the remainder")
		}

		s1, s2 = s2, ring.Sub(s1, ring.Mul(q, s2))
		t1, t2 = t2, ring.Sub(t1, ring.Mul(q, t2))
		x, y = y, r
	}

	return y, s2, t2, nil
}

func euclideanDivision[E any, R EuclideanRing[E]](ring R, a, b E) (q, r E) {
	q, r, err := ring.EuclideanDivision(a, b)
	if err != nil {
		panic("divisor is non-zero")
	}

	return q, r
}

func smaller[E any, R EuclideanRing[E]](ring R, r, y E) bool {
	rs, rok := ring.EuclideanFunction(r)
	ys, yok := ring.EuclideanFunction(y)

	return !rok || (yok && rs < ys)
}

// ExtendedEuclideanInt is ExtendedEuclidean over Integers on machine integers
// directly, with the gcd made non-negative (s and t flip sign with it).
func ExtendedEuclideanInt(a, b int64) (gcd uint64, s, t int64, err error) {
	g, s, t, err := extendedEuclideanInt64(a, b)
	if err != nil {
		return 0, 0, 0, err
	}

	if g < 0 {
		return absUint64(g), -s, -t, nil
	}

	return uint64(g), s, t, nil
}

func extendedEuclideanInt64(a, b int64) (gcd, s, t int64, err error) {
	if b == 0 {
		if a == 0 {
			return 0, 0, 0, ErrBothZero
		}

		return a, 1, 0, nil
	}

	if _, rem := divEuclid(a, b); rem == 0 {
		return b, 0, 1, nil
	}

	x, y := a, b
	s1, s2 := int64(1), int64(0)
	t1, t2 := int64(0), int64(1)

	for {
		q, r := divEuclid(x, y)
		if r == 0 {
			break
		}

		s1, s2 = s2, s1-q*s2
		t1, t2 = t2, t1-q*t2
		x, y = y, r
	}

	return y, s2, t2, nil
}
