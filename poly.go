package patch

import (
	"strconv"
	"strings"
)

// Poly is a polynomial c0 + c1 x + c2 x² + ..., stored with the constant
// coefficient first. The empty polynomial is zero everywhere.
type Poly []float64

// Eval evaluates the polynomial at x using Horner's method.
func (p Poly) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Antiderivative returns the antiderivative of p that is zero at x = 0.
func (p Poly) Antiderivative() Poly {
	out := make(Poly, len(p)+1)
	for i, c := range p {
		out[i+1] = c / float64(i+1)
	}
	return out
}

// Integral returns the exact integral of p over [a, b].
func (p Poly) Integral(a, b float64) float64 {
	ad := p.Antiderivative()
	return ad.Eval(b) - ad.Eval(a)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	out := make(Poly, max(len(p), len(q)))
	copy(out, p)
	for i, c := range q {
		out[i] -= c
	}
	return out
}

func (p Poly) String() string {
	if len(p) == 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i, c := range p {
		if c == 0 {
			continue
		}
		if !first {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		first = false
		switch {
		case i == 0:
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		case c == 1:
		case c == -1:
			sb.WriteString("-")
		default:
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	if first {
		return "0"
	}
	return sb.String()
}

// Band is a region between a lower and an upper boundary curve.
type Band struct {
	Lower func(float64) float64
	Upper func(float64) float64
}

// Width returns Upper(x) - Lower(x). It can be used as a [WidthFunc].
func (b Band) Width(x float64) float64 {
	return b.Upper(x) - b.Lower(x)
}
