package polymoly

import (
	"html"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/polymoly/field"
)

// Part is one displayed term of a polynomial, see field.DisplayPart.
type Part struct {
	Coefficient     string `json:"coefficient"`
	ShowCoefficient bool   `json:"show_coefficient"`
	Exponent        int    `json:"exponent"`
}

// Output is a named polynomial produced by an operation.
type Output struct {
	Label  string `json:"label"`
	Text   string `json:"text"`
	Parts  []Part `json:"parts"`
	MathML string `json:"mathml"`
}

// Result holds every output of one operation, in order. Division yields a
// quotient and a remainder, gcd yields the gcd and both Bézout coefficients.
type Result struct {
	Ring       string   `json:"ring"`
	RingMathML string   `json:"ring_mathml"`
	Operation  string   `json:"operation"`
	Outputs    []Output `json:"outputs"`
}

func newResult(s RingSpec, operation string, outputs []Output) *Result {
	return &Result{
		Ring:       s.String(),
		RingMathML: s.PolynomialMathML(),
		Operation:  operation,
		Outputs:    outputs,
	}
}

// Output returns the output with the given label.
func (r *Result) Output(label string) (Output, bool) {
	for _, o := range r.Outputs {
		if o.Label == label {
			return o, true
		}
	}

	return Output{}, false
}

func (r *Result) String() string {
	var bldr strings.Builder

	for i, o := range r.Outputs {
		if i != 0 {
			bldr.WriteByte('\n')
		}

		bldr.WriteString(o.Label)
		bldr.WriteString(" = ")
		bldr.WriteString(o.Text)
	}

	return bldr.String()
}

func newOutput[E any, R field.Ring[E]](label string, p *field.Polynomial[E, R]) Output {
	dps := field.DisplayParts(p)

	parts := make([]Part, len(dps))
	for i, dp := range dps {
		parts[i] = Part{
			Coefficient:     field.FormatElem[E](p.Ring(), dp.Coefficient),
			ShowCoefficient: dp.ShowCoefficient,
			Exponent:        dp.Exponent,
		}
	}

	return Output{
		Label:  label,
		Text:   p.String(),
		Parts:  parts,
		MathML: RenderMathML(parts),
	}
}

// constantOutput is an Output for a value that need not fit the ring's
// element type.
func constantOutput(label, text string) Output {
	parts := []Part{{Coefficient: text, ShowCoefficient: true}}

	return Output{Label: label, Text: text, Parts: parts, MathML: RenderMathML(parts)}
}

// RenderMathML renders the terms as a <math> element: coefficients as <mn>,
// x as <mi>, powers as <msup> and separators as <mo>+</mo>.
func RenderMathML(parts []Part) string {
	var bldr strings.Builder

	bldr.WriteString("<math>")

	for i, part := range parts {
		if i != 0 {
			bldr.WriteString("<mo>+</mo>")
		}

		if part.ShowCoefficient {
			bldr.WriteString("<mn>")
			bldr.WriteString(html.EscapeString(part.Coefficient))
			bldr.WriteString("</mn>")
		}

		switch {
		case part.Exponent > 1:
			bldr.WriteString("<msup><mi>x</mi><mn>")
			bldr.WriteString(strconv.Itoa(part.Exponent))
			bldr.WriteString("</mn></msup>")
		case part.Exponent == 1:
			bldr.WriteString("<mi>x</mi>")
		}
	}

	bldr.WriteString("</math>")

	return bldr.String()
}
