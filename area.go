package patch

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultAccuracy is the default absolute accuracy of areas, inverse areas and
// patch areas, used whenever an accuracy of zero is given.
const DefaultAccuracy = 1e-9

// maxAreaDepth limits how often [Area] subdivides. Integrands that never
// converge, such as ones with jump discontinuities, stop refining at this
// depth along the offending path.
const maxAreaDepth = 20

// Number of Gauss-Legendre nodes used for the coarse and fine estimate of each
// panel. An n point rule is exact for polynomials of degree 2n-1.
const (
	coarseNodes = 8
	fineNodes   = 16
)

// WidthFunc describes the height of the region at position x. It must be
// nonnegative on the interval of interest.
type WidthFunc func(x float64) float64

// Area returns the integral of f over [xmin, xmax].
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
// Each panel is estimated with an 8 and a 16 point rule; when the two disagree
// by more than the panel's share of the accuracy, the panel is split in half.
//
// accuracy is absolute, not relative to the size of the result. Integrands of
// large magnitude therefore need many more subdivisions to reach it, up to
// the depth limit.
//
// Area returns exactly zero if xmin == xmax and the negated integral over
// [xmax, xmin] if xmin > xmax. NaN integrand values are not handled
// specially and show up in the result. If accuracy isn't positive,
// [DefaultAccuracy] is used.
func Area(f WidthFunc, xmin, xmax, accuracy float64) float64 {
	if xmin == xmax {
		return 0
	}
	if xmin > xmax {
		return -Area(f, xmax, xmin, accuracy)
	}
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	return area(f, xmin, xmax, accuracy, 0)
}

func area(f WidthFunc, a, b, accuracy float64, depth int) float64 {
	coarse := quad.Fixed(f, a, b, coarseNodes, quad.Legendre{}, 0)
	fine := quad.Fixed(f, a, b, fineNodes, quad.Legendre{}, 0)
	if math.Abs(fine-coarse) < accuracy || depth >= maxAreaDepth || math.IsNaN(fine) {
		return fine
	}
	mid := 0.5 * (a + b)
	if mid <= a || mid >= b {
		// Panel can't be split any further in floating point.
		return fine
	}
	return area(f, a, mid, accuracy*0.5, depth+1) + area(f, mid, b, accuracy*0.5, depth+1)
}
