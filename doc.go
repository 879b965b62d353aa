// Package patch places equal-area patches and fixed-width separators along a
// region bounded by a width curve.
//
// # Adam's Patch
//
// The problem is this: a strip of land spans x ∈ [XMin, XMax], and at every
// position x it is f(x) tall. It has to be split into n patches that all have
// the same area, with n-1 separators (paths, hedges, fences) of a fixed width w
// between neighbouring patches. Separators are measured along x, not by area,
// so how much area a separator eats depends on where it ends up. That in turn
// depends on the patch area, which is what we are trying to find.
//
// The package solves this in layers, each of which calls the previous ones:
//
//   - [Area] integrates the width function using adaptive Gauss-Legendre
//     quadrature.
//   - [InverseArea] finds where the cumulative area from XMin reaches a target,
//     using the bracketed root finder [FindRoot].
//   - [Problem.CoveredArea] walks from left to right, alternately consuming a
//     patch worth of area and a separator worth of width, and reports the total
//     area consumed.
//   - [Problem.OptimizePatchArea] searches for the patch area at which
//     [Problem.CoveredArea] consumes exactly the total area.
//
// [Problem.Solve] combines the last two and is usually what callers want.
//
// # Width functions
//
// A [WidthFunc] must be nonnegative and integrable on the interval. Because it
// is nonnegative, the cumulative area is monotonic and inverting it is a
// well-posed root finding problem. Negative widths are not detected; they make
// the cumulative area non-monotonic and the results meaningless.
//
// [Poly] provides polynomial curves, and [Band] turns a lower and an upper
// boundary curve into a width function.
//
// # Failure modes
//
// Requests that cannot be satisfied regardless of patch size fail eagerly with
// an [*InfeasibleConstraintError]. Root finding failures surface as
// [*RootBracketError] and are never retried. The most common cause is a width
// function with a narrow spike that the 100 point sampling grid of
// [Problem.OptimizePatchArea] misses, leading to a bracket that doesn't contain
// the solution.
//
// All functions are pure. A [Problem] may be used from multiple goroutines.
package patch
