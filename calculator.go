package polymoly

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/jonathanmweiss/polymoly/field"
)

// textRing is a coefficient ring that can be read from and written to text.
type textRing[E any] interface {
	field.ParsableRing[E]
	field.DisplayRing[E]
}

type textField[E any] interface {
	textRing[E]
	field.Field[E]
}

// calculator hides the element type of a coefficient ring.
type calculator interface {
	calculate(op Operation, lhs, rhs string) ([]Output, error)
	evaluate(poly, x string) ([]Output, error)
	interpolate(xs, ys []string) ([]Output, error)
	info() ([]Output, error)
}

type ringCalculator[E any, R textRing[E]] struct {
	ring      R
	maxDegree int
}

func (c *ringCalculator[E, R]) parse(name, text string) (*field.Polynomial[E, R], error) {
	p, err := field.ParseMaxDegree[E](c.ring, text, c.maxDegree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return p, nil
}

func (c *ringCalculator[E, R]) operands(lhs, rhs string) (a, b *field.Polynomial[E, R], err error) {
	if a, err = c.parse("lhs", lhs); err != nil {
		return nil, nil, err
	}

	if b, err = c.parse("rhs", rhs); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (c *ringCalculator[E, R]) calculate(op Operation, lhs, rhs string) ([]Output, error) {
	a, b, err := c.operands(lhs, rhs)
	if err != nil {
		return nil, err
	}

	var result *field.Polynomial[E, R]

	switch op {
	case Add:
		result = a.Add(b)
	case Sub:
		result = a.Sub(b)
	case Mul:
		if !a.IsZero() && !b.IsZero() && a.Degree()+b.Degree() > c.maxDegree {
			return nil, fmt.Errorf("%w: product of degree %d, limit %d",
				field.ErrDegreeTooLarge, a.Degree()+b.Degree(), c.maxDegree)
		}

		result = a.Mul(b)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOperation, op)
	}

	return []Output{newOutput("result", result)}, nil
}

func (c *ringCalculator[E, R]) evaluate(poly, x string) ([]Output, error) {
	p, err := c.parse("polynomial", poly)
	if err != nil {
		return nil, err
	}

	at, err := c.ring.ParseElem(x)
	if err != nil {
		return nil, fmt.Errorf("point: %w", err)
	}

	return []Output{newOutput("value", field.Constant[E](c.ring, p.Evaluate(at)))}, nil
}

func (c *ringCalculator[E, R]) interpolate([]string, []string) ([]Output, error) {
	return nil, fmt.Errorf("%w: interpolation", ErrUnsupportedOperation)
}

// info describes the ring: its characteristic and, for Z/pZ, a generator of
// the multiplicative group.
func (c *ringCalculator[E, R]) info() ([]Output, error) {
	char := "0"
	if m, ok := any(c.ring).(interface{ Modulus() uint64 }); ok {
		char = strconv.FormatUint(m.Modulus(), 10)
	}

	outputs := []Output{constantOutput("characteristic", char)}

	if g, ok := any(c.ring).(interface{ Generator() (int64, error) }); ok {
		gen, err := g.Generator()
		if err != nil {
			return nil, err
		}

		outputs = append(outputs, constantOutput("generator", strconv.FormatInt(gen, 10)))
	}

	return outputs, nil
}

func (c *ringCalculator[E, R]) parseElems(name string, texts []string) ([]E, error) {
	elems := make([]E, len(texts))
	for i, s := range texts {
		e, err := c.ring.ParseElem(s)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}

		elems[i] = e
	}

	return elems, nil
}

type fieldCalculator[E any, F textField[E]] struct {
	ringCalculator[E, F]
}

func (c *fieldCalculator[E, F]) calculate(op Operation, lhs, rhs string) ([]Output, error) {
	switch op {
	case Div:
		a, b, err := c.operands(lhs, rhs)
		if err != nil {
			return nil, err
		}

		q, r, err := field.LongDiv(a, b)
		if err != nil {
			return nil, err
		}

		return []Output{newOutput("quotient", q), newOutput("remainder", r)}, nil
	case Gcd:
		a, b, err := c.operands(lhs, rhs)
		if err != nil {
			return nil, err
		}

		pr := field.NewEuclideanPolyRing[E](c.ring)

		g, s, t, err := field.ExtendedEuclidean[*field.Polynomial[E, F]](pr, a, b)
		if err != nil {
			return nil, err
		}

		return []Output{newOutput("gcd", g), newOutput("s", s), newOutput("t", t)}, nil
	default:
		return c.ringCalculator.calculate(op, lhs, rhs)
	}
}

func (c *fieldCalculator[E, F]) interpolate(xs, ys []string) ([]Output, error) {
	if len(xs) != len(ys) {
		return nil, field.ErrPointsMismatch
	}

	if len(xs) > c.maxDegree+1 {
		return nil, fmt.Errorf("%w: %d points, limit %d", field.ErrDegreeTooLarge, len(xs), c.maxDegree+1)
	}

	xe, err := c.parseElems("x", xs)
	if err != nil {
		return nil, err
	}

	ye, err := c.parseElems("y", ys)
	if err != nil {
		return nil, err
	}

	p, err := field.Interpolate[E](c.ring, xe, ye)
	if err != nil {
		return nil, err
	}

	return []Output{newOutput("interpolant", p)}, nil
}

// maxCachedRings bounds the rings kept by a Calculator; further rings are
// rebuilt on every call.
const maxCachedRings = 256

type ringCache struct {
	sync.Locker
	specToCalculator map[RingSpec]calculator
}

func newRingCache() ringCache {
	return ringCache{
		Locker:           &sync.Mutex{},
		specToCalculator: make(map[RingSpec]calculator),
	}
}

func (rc ringCache) load(s RingSpec) calculator {
	rc.Lock()
	defer rc.Unlock()

	return rc.specToCalculator[s]
}

func (rc ringCache) store(s RingSpec, c calculator) {
	rc.Lock()
	defer rc.Unlock()

	if _, ok := rc.specToCalculator[s]; ok || len(rc.specToCalculator) >= maxCachedRings {
		return
	}

	rc.specToCalculator[s] = c
}

// DefaultMaxDegree bounds the degree of operands, products and interpolants
// unless WithMaxDegree says otherwise. Multiplication is quadratic in the
// degree.
const DefaultMaxDegree = 4096

// Calculator runs operations on polynomials given as text. Checking that a
// large modulus is prime is slow, so rings are built once and reused.
// A Calculator is safe for concurrent use.
type Calculator struct {
	cache     ringCache
	maxDegree int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithMaxDegree limits the degree of every polynomial a Calculator parses or
// produces. Larger inputs fail with field.ErrDegreeTooLarge.
func WithMaxDegree(n int) Option {
	return func(c *Calculator) {
		c.maxDegree = max(n, 0)
	}
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{cache: newRingCache(), maxDegree: DefaultMaxDegree}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MaxDegree returns the degree limit.
func (c *Calculator) MaxDegree() int {
	return c.maxDegree
}

var defaultCalculator = NewCalculator()

func (c *Calculator) ring(s RingSpec) (calculator, error) {
	s = s.canonical()

	if calc := c.cache.load(s); calc != nil {
		return calc, nil
	}

	// Build outside the lock.
	calc, err := newCalculator(s, c.maxDegree)
	if err != nil {
		return nil, err
	}

	c.cache.store(s, calc)

	return calc, nil
}

// Calculate parses lhs and rhs as polynomials over the ring s and applies op.
// Div and Gcd need a field of coefficients and fail with
// ErrUnsupportedOperation otherwise.
func (c *Calculator) Calculate(s RingSpec, op Operation, lhs, rhs string) (*Result, error) {
	if !op.Supports(s.Kind) {
		return nil, fmt.Errorf("%w: %v over %v", ErrUnsupportedOperation, op, s.Kind)
	}

	calc, err := c.ring(s)
	if err != nil {
		return nil, err
	}

	outputs, err := calc.calculate(op, lhs, rhs)
	if err != nil {
		return nil, err
	}

	return newResult(s.canonical(), op.String(), outputs), nil
}

// EvaluateAt evaluates poly at the element x.
func (c *Calculator) EvaluateAt(s RingSpec, poly, x string) (*Result, error) {
	calc, err := c.ring(s)
	if err != nil {
		return nil, err
	}

	outputs, err := calc.evaluate(poly, x)
	if err != nil {
		return nil, err
	}

	return newResult(s.canonical(), "eval", outputs), nil
}

// InterpolatePoints finds the polynomial of least degree through the points
// (xs[i], ys[i]). The ring must be a field.
func (c *Calculator) InterpolatePoints(s RingSpec, xs, ys []string) (*Result, error) {
	if !s.Kind.IsField() {
		return nil, fmt.Errorf("%w: interpolation over %v", ErrUnsupportedOperation, s.Kind)
	}

	calc, err := c.ring(s)
	if err != nil {
		return nil, err
	}

	outputs, err := calc.interpolate(xs, ys)
	if err != nil {
		return nil, err
	}

	return newResult(s.canonical(), "interpolate", outputs), nil
}

// RingInfo describes the ring s. The outputs are its characteristic and, for
// Z/pZ, a generator of the multiplicative group.
func (c *Calculator) RingInfo(s RingSpec) (*Result, error) {
	calc, err := c.ring(s)
	if err != nil {
		return nil, err
	}

	outputs, err := calc.info()
	if err != nil {
		return nil, err
	}

	return newResult(s.canonical(), "info", outputs), nil
}

// IntegerGcd runs the extended Euclidean algorithm on two integers, giving
// the non-negative gcd and s, t with s*a + t*b = gcd.
func IntegerGcd(a, b string) (*Result, error) {
	z := field.Integers{}

	x, err := z.ParseElem(a)
	if err != nil {
		return nil, fmt.Errorf("a: %w", err)
	}

	y, err := z.ParseElem(b)
	if err != nil {
		return nil, fmt.Errorf("b: %w", err)
	}

	g, s, t, err := field.ExtendedEuclideanInt(x, y)
	if err != nil {
		return nil, err
	}

	return newResult(RingSpec{Kind: Integers}, Gcd.String(), []Output{
		constantOutput("gcd", strconv.FormatUint(g, 10)),
		constantOutput("s", z.FormatElem(s)),
		constantOutput("t", z.FormatElem(t)),
	}), nil
}

// Calculate runs op with a shared Calculator.
func Calculate(s RingSpec, op Operation, lhs, rhs string) (*Result, error) {
	return defaultCalculator.Calculate(s, op, lhs, rhs)
}

// EvaluateAt evaluates poly at x with a shared Calculator.
func EvaluateAt(s RingSpec, poly, x string) (*Result, error) {
	return defaultCalculator.EvaluateAt(s, poly, x)
}

// RingInfo describes s with a shared Calculator.
func RingInfo(s RingSpec) (*Result, error) {
	return defaultCalculator.RingInfo(s)
}

// InterpolatePoints interpolates with a shared Calculator.
func InterpolatePoints(s RingSpec, xs, ys []string) (*Result, error) {
	return defaultCalculator.InterpolatePoints(s, xs, ys)
}
