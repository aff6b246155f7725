package polymoly

import (
	"errors"
	"fmt"
	"strings"
)

// Operation is a binary operation on two polynomials.
type Operation int

const (
	Add Operation = iota
	Sub
	Mul
	Div
	Gcd
)

// OperandRingType is the structure an operation needs from the polynomial
// ring its operands live in.
type OperandRingType int

const (
	NormalRing OperandRingType = iota
	// FieldRing needs the coefficients to form a field, for long division.
	FieldRing
	// EuclideanRing needs the polynomials to form a Euclidean ring, which
	// again means a field of coefficients.
	EuclideanRing
)

var (
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrUnsupportedOperation = errors.New("operation not supported over this ring")
)

var operationNames = []string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Gcd: "gcd",
}

var operationSymbols = map[string]Operation{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
}

// Operations lists every operation in display order.
func Operations() []Operation {
	return []Operation{Add, Sub, Mul, Div, Gcd}
}

// ParseOperation accepts an operation name ("add") or its symbol ("+").
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if op, ok := operationSymbols[s]; ok {
		return op, nil
	}

	for op, name := range operationNames {
		if name == s {
			return Operation(op), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", int(o))
	}

	return operationNames[o]
}

func (o Operation) OperandRingType() OperandRingType {
	switch o {
	case Div:
		return FieldRing
	case Gcd:
		return EuclideanRing
	default:
		return NormalRing
	}
}

// Supports reports whether o can run on polynomials over k.
func (o Operation) Supports(k RingKind) bool {
	return o.OperandRingType() == NormalRing || k.IsField()
}

func (o Operation) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(operationNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, int(o))
	}

	return []byte(o.String()), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}

	*o = op

	return nil
}
