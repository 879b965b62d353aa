package patch

import (
	"gonum.org/v1/gonum/floats"
)

// maxSamples is the number of evenly spaced points at which the width
// function is sampled to estimate its maximum.
const maxSamples = 100

// Bracket widening factors applied to the heuristic patch area bounds.
const (
	bracketShrink = 0.9
	bracketGrow   = 1.1
)

// OptimizePatchArea finds the patch area for which npatches patches and their
// separators consume exactly the total area under the width function.
//
// The separators must fit into the interval with room to spare, that is,
// SeparatorWidth * (npatches-1) < XMax - XMin; otherwise an
// [*InfeasibleConstraintError] is returned before the width function is
// evaluated. For npatches == 0 the total area is returned.
//
// The solution is searched for between two bounds. The upper bound assumes
// the separators take no area at all. The lower bound assumes every separator
// lies where the region is widest, using the largest of 100 evenly spaced
// samples of the width function. Both are widened by 10%. A narrow spike
// between samples can make the lower bound too large, in which case a
// [*RootBracketError] is returned. The search isn't retried.
func (p Problem) OptimizePatchArea(npatches int) (float64, error) {
	if err := p.Validate(npatches); err != nil {
		return 0, err
	}
	if err := p.CheckFeasible(npatches); err != nil {
		return 0, err
	}
	if p.Width == nil {
		return 0, ErrNilWidth
	}

	total := p.TotalArea()
	if npatches == 0 {
		return total, nil
	}

	n := float64(npatches)
	fmax := p.sampleMax(maxSamples)
	lo := max((total-p.SeparatorWidth*fmax*(n-1))/n, 0)
	hi := total / n

	f := func(patchArea float64) (float64, error) {
		layout, err := p.CoveredArea(patchArea, npatches)
		if err != nil {
			return 0, err
		}
		return total - layout.Covered, nil
	}
	return findRoot(f, lo*bracketShrink, hi*bracketGrow, p.accuracy())
}

// sampleMax returns the largest value of the width function at n evenly
// spaced points, including both ends of the interval.
func (p Problem) sampleMax(n int) float64 {
	xs := floats.Span(make([]float64, n), p.XMin, p.XMax)
	for i, x := range xs {
		xs[i] = p.Width(x)
	}
	return floats.Max(xs)
}

// OptimizePatchArea is a shorthand for [Problem.OptimizePatchArea] using
// [DefaultAccuracy].
func OptimizePatchArea(f WidthFunc, xmin, xmax float64, npatches int, w float64) (float64, error) {
	p := Problem{Width: f, XMin: xmin, XMax: xmax, SeparatorWidth: w}
	return p.OptimizePatchArea(npatches)
}
