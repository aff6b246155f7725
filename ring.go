package polymoly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathanmweiss/polymoly/field"
)

// RingKind selects the coefficient ring of the polynomials being worked on.
type RingKind int

const (
	Reals RingKind = iota
	Integers
	IntegersModuloN
	IntegersModuloP
)

var ringKindNames = []string{
	Reals:           "reals",
	Integers:        "integers",
	IntegersModuloN: "mod-n",
	IntegersModuloP: "mod-p",
}

var ErrUnknownRing = errors.New("unknown ring")

// ParseRingKind accepts the names printed by RingKind.String.
func ParseRingKind(s string) (RingKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range ringKindNames {
		if name == s {
			return RingKind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRing, s)
}

func (k RingKind) String() string {
	if k < 0 || int(k) >= len(ringKindNames) {
		return fmt.Sprintf("RingKind(%d)", int(k))
	}

	return ringKindNames[k]
}

// NeedsModulus reports whether RingSpec.Modulus is used by the kind.
func (k RingKind) NeedsModulus() bool {
	return k == IntegersModuloN || k == IntegersModuloP
}

// IsField reports whether every non-zero coefficient is invertible, which is
// what polynomial division and gcd need.
func (k RingKind) IsField() bool {
	return k == Reals || k == IntegersModuloP
}

func (k RingKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(ringKindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRing, int(k))
	}

	return []byte(k.String()), nil
}

func (k *RingKind) UnmarshalText(text []byte) error {
	kind, err := ParseRingKind(string(text))
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// RingSpec describes a coefficient ring. Modulus is ignored by Reals and
// Integers.
type RingSpec struct {
	Kind    RingKind `json:"ring"`
	Modulus uint64   `json:"modulus,omitempty"`
}

// canonical drops the modulus where it has no meaning, so that equal rings
// compare equal.
func (s RingSpec) canonical() RingSpec {
	if !s.Kind.NeedsModulus() {
		s.Modulus = 0
	}

	return s
}

// String gives the ring's usual name: R, Z, Z/nZ.
func (s RingSpec) String() string {
	switch s.Kind {
	case Reals:
		return "R"
	case Integers:
		return "Z"
	case IntegersModuloN, IntegersModuloP:
		return fmt.Sprintf("Z/%dZ", s.Modulus)
	default:
		return s.Kind.String()
	}
}

// PolynomialMathML renders the polynomial ring over s, e.g. ℤ/7ℤ[x].
func (s RingSpec) PolynomialMathML() string {
	var name string

	switch s.Kind {
	case Reals:
		name = "ℝ"
	case IntegersModuloN, IntegersModuloP:
		name = fmt.Sprintf("ℤ/%dℤ", s.Modulus)
	default:
		name = "ℤ"
	}

	return "<math><mi>" + name + "</mi><mo>[</mo><mi>x</mi><mo>]</mo></math>"
}

// newCalculator builds the coefficient ring described by s.
func newCalculator(s RingSpec, maxDegree int) (calculator, error) {
	switch s.Kind {
	case Reals:
		return &fieldCalculator[float64, field.Reals]{ringCalculator[float64, field.Reals]{field.Reals{}, maxDegree}}, nil
	case Integers:
		return &ringCalculator[int64, field.Integers]{field.Integers{}, maxDegree}, nil
	case IntegersModuloN:
		r, err := field.NewIntegersModuloN(s.Modulus)
		if err != nil {
			return nil, err
		}

		return &ringCalculator[int64, field.IntegersModuloN]{r, maxDegree}, nil
	case IntegersModuloP:
		f, err := field.NewIntegersModuloP(s.Modulus)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", err, s.Modulus)
		}

		return &fieldCalculator[int64, field.IntegersModuloP]{ringCalculator[int64, field.IntegersModuloP]{f, maxDegree}}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownRing, s.Kind)
	}
}
