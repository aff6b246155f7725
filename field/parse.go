package field

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a polynomial written as summands joined by '+', e.g.
// "0.5x + -3x^2 + 5x^1 + 1". Each summand is "x", "<c>x", "<c>x^<n>" or
// "<c>", where <c> is whatever the ring's ParseElem accepts. Whitespace is
// ignored and repeated degrees are summed.
//
// Parsing is all or nothing: any bad summand fails the whole input with an
// error wrapping ErrParse. Exponents above DefaultMaxDegree are rejected.
func Parse[E any, R ParsableRing[E]](ring R, input string) (*Polynomial[E, R], error) {
	return ParseMaxDegree[E](ring, input, DefaultMaxDegree)
}

// DefaultMaxDegree bounds the exponents Parse accepts. Polynomials are dense,
// so the degree decides the allocation.
const DefaultMaxDegree = 1 << 16

// ParseMaxDegree is Parse with exponents limited to maxDegree. A summand
// above the limit fails with an error wrapping both ErrParse and
// ErrDegreeTooLarge.
func ParseMaxDegree[E any, R ParsableRing[E]](ring R, input string, maxDegree int) (*Polynomial[E, R], error) {
	input = strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return -1
		}

		return c
	}, input)

	poly := Zero[E](ring)
	for _, summand := range strings.Split(input, "+") {
		coeff, deg, err := parseSummand[E](ring, summand, maxDegree)
		if err != nil {
			return nil, err
		}

		poly.AddElem(coeff, deg)
	}

	return poly, nil
}

func parseSummand[E any, R ParsableRing[E]](ring R, summand string, maxDegree int) (E, int, error) {
	var zero E

	before, after, found := strings.Cut(summand, "x")
	if !found {
		c, err := ring.ParseElem(summand)
		if err != nil {
			return zero, 0, fmt.Errorf("%w: summand %q", err, summand)
		}

		return c, 0, nil
	}

	deg := 1
	if exp, ok := strings.CutPrefix(after, "^"); ok {
		n, err := strconv.ParseUint(exp, 10, 31)
		if err != nil {
			return zero, 0, fmt.Errorf("%w: bad exponent in summand %q", ErrParse, summand)
		}

		deg = int(n)
	} else if after != "" {
		return zero, 0, fmt.Errorf("%w: malformed summand %q", ErrParse, summand)
	}

	if deg > maxDegree {
		return zero, 0, fmt.Errorf("%w: %w: summand %q above degree %d", ErrParse, ErrDegreeTooLarge, summand, maxDegree)
	}

	if before == "" {
		return ring.One(), deg, nil
	}

	c, err := ring.ParseElem(before)
	if err != nil {
		return zero, 0, fmt.Errorf("%w: summand %q", err, summand)
	}

	return c, deg, nil
}
