package field

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayPart is one rendered term of a polynomial.
//
// The coefficient is hidden when it is the ring's one on a non-constant term.
// Exponent 0 means no variable is shown, 1 means x and n > 1 means x^n.
type DisplayPart[E any] struct {
	Coefficient     E
	ShowCoefficient bool
	Exponent        int
}

// HasVariable reports whether x appears in the term.
func (d DisplayPart[E]) HasVariable() bool {
	return d.Exponent > 0
}

// HasExponent reports whether the term needs a superscript.
func (d DisplayPart[E]) HasExponent() bool {
	return d.Exponent > 1
}

// DisplayParts breaks p into terms from the highest degree to the lowest,
// skipping zero coefficients. The zero polynomial is a single constant term
// holding the ring's zero.
func DisplayParts[E any, R Ring[E]](p *Polynomial[E, R]) []DisplayPart[E] {
	r := p.ring
	if p.IsZero() {
		return []DisplayPart[E]{{Coefficient: r.Zero(), ShowCoefficient: true}}
	}

	parts := make([]DisplayPart[E], 0, len(p.inner))
	for i := len(p.inner) - 1; i >= 0; i-- {
		c := p.inner[i]
		if isZero[E](r, c) {
			continue
		}

		parts = append(parts, DisplayPart[E]{
			Coefficient:     c,
			ShowCoefficient: i == 0 || !r.Equals(c, r.One()),
			Exponent:        i,
		})
	}

	return parts
}

// FormatElem renders e with the ring's own formatting when it has one.
func FormatElem[E any, R Ring[E]](r R, e E) string {
	if d, ok := any(r).(DisplayRing[E]); ok {
		return d.FormatElem(e)
	}

	return fmt.Sprint(e)
}

// String renders p as e.g. "0.5x^3 + -3x^2 + 5x + 1". Terms are always joined
// with " + ", negative coefficients keep their own sign.
func (p *Polynomial[E, R]) String() string {
	var bldr strings.Builder

	for i, part := range DisplayParts(p) {
		if i != 0 {
			bldr.WriteString(" + ")
		}

		if part.ShowCoefficient {
			bldr.WriteString(FormatElem(p.ring, part.Coefficient))
		}

		if part.HasVariable() {
			bldr.WriteString("x")
		}

		if part.HasExponent() {
			bldr.WriteString("^")
			bldr.WriteString(strconv.Itoa(part.Exponent))
		}
	}

	return bldr.String()
}
