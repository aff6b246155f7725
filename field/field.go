package field

import "errors"

// Ring is a commutative ring whose elements are of type E.
//
// Implementations must keep Add and Mul associative and commutative, Zero and
// One must be the identities, and Reduce must be idempotent and fix every
// result of Add, Neg and Mul.
type Ring[E any] interface {
	Zero() E
	One() E

	Add(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	// Sub returns a + (-b).
	Sub(a, b E) E

	// Reduce maps an element into its canonical representative. It is the
	// identity for rings without a modulus.
	Reduce(a E) E
	Equals(a, b E) bool
}

// Field is a Ring in which every non-zero element has a multiplicative inverse.
type Field[E any] interface {
	Ring[E]

	// Inverse fails with ErrDivisionByZero exactly when a is zero.
	Inverse(a E) (E, error)
	// Div returns a * Inverse(b).
	Div(a, b E) (E, error)
}

// EuclideanRing is a Ring with a division algorithm whose remainder is
// strictly smaller than the divisor under EuclideanFunction.
type EuclideanRing[E any] interface {
	Ring[E]

	// EuclideanFunction returns the size of a. ok is false when the size is
	// undefined (the zero polynomial).
	EuclideanFunction(a E) (size uint64, ok bool)
	// EuclideanDivision returns q, r with a = q*b + r. It fails with
	// ErrDivisionByZero exactly when b is zero.
	EuclideanDivision(a, b E) (q, r E, err error)
}

// ParsableRing can read its elements from text.
type ParsableRing[E any] interface {
	Ring[E]
	ParseElem(s string) (E, error)
}

// DisplayRing can render its elements as text.
type DisplayRing[E any] interface {
	Ring[E]
	FormatElem(e E) string
}

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrBothZero        = errors.New("gcd of zero and zero is undefined")
	ErrNotPrime        = errors.New("modulus is not prime")
	ErrZeroModulus     = errors.New("modulus must be positive")
	ErrModulusTooLarge = errors.New("supporting moduli up to 63 bits")
	ErrParse           = errors.New("cannot parse polynomial")
	ErrDegreeTooLarge  = errors.New("degree exceeds the limit")
)

// sub is the derived subtraction shared by the concrete rings.
func sub[E any](r Ring[E], a, b E) E {
	return r.Add(a, r.Neg(b))
}

// div is the derived division shared by the concrete fields.
func div[E any](f Field[E], a, b E) (E, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		var zero E
		return zero, err
	}

	return f.Mul(a, inv), nil
}

func isZero[E any](r Ring[E], a E) bool {
	return r.Equals(a, r.Zero())
}
