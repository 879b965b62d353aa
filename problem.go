package patch

// Problem describes a region and how it is to be split. It groups the values
// that every step of the computation needs.
//
// The zero value isn't usable; at least Width, XMin and XMax have to be set.
type Problem struct {
	// Width is the height of the region at each position.
	Width WidthFunc
	// XMin and XMax bound the region. XMin must be less than XMax.
	XMin, XMax float64
	// SeparatorWidth is the extent of each separator along x.
	SeparatorWidth float64
	// Accuracy is the absolute accuracy used for areas and positions. Zero
	// means [DefaultAccuracy].
	Accuracy float64
}

func (p Problem) accuracy() float64 {
	if p.Accuracy <= 0 {
		return DefaultAccuracy
	}
	return p.Accuracy
}

// Span returns XMax - XMin.
func (p Problem) Span() float64 {
	return p.XMax - p.XMin
}

// Area returns the area under the width function between a and b.
func (p Problem) Area(a, b float64) float64 {
	return Area(p.Width, a, b, p.accuracy())
}

// CumulativeArea returns the area under the width function between XMin and
// x.
func (p Problem) CumulativeArea(x float64) float64 {
	return p.Area(p.XMin, x)
}

// TotalArea returns the area under the width function between XMin and XMax.
func (p Problem) TotalArea() float64 {
	return p.Area(p.XMin, p.XMax)
}

// Validate checks the problem's interval, separator width and the patch count
// it is going to be used with. It doesn't check Width, so that
// [Problem.CheckFeasible] can be used before a width function is known.
func (p Problem) Validate(npatches int) error {
	switch {
	case !(p.XMin < p.XMax):
		return ErrInvalidInterval
	case npatches < 0:
		return ErrNegativePatchCount
	case p.SeparatorWidth < 0:
		return ErrNegativeSeparatorWidth
	}
	return nil
}

// CheckFeasible reports whether npatches-1 separators fit into the interval at
// all. It returns an [*InfeasibleConstraintError] if they don't.
func (p Problem) CheckFeasible(npatches int) error {
	if p.SeparatorWidth*float64(npatches-1) >= p.Span() {
		return &InfeasibleConstraintError{
			SeparatorWidth: p.SeparatorWidth,
			NPatches:       npatches,
			Span:           p.Span(),
		}
	}
	return nil
}

// Solution is an optimized patch area together with the layout it produces.
type Solution struct {
	PatchArea float64
	Layout    Layout
}

// Solve finds the patch area for npatches patches and lays them out.
//
// This is [Problem.OptimizePatchArea] followed by [Problem.CoveredArea]. For
// npatches == 0 the layout is a single patch covering the whole interval.
func (p Problem) Solve(npatches int) (Solution, error) {
	area, err := p.OptimizePatchArea(npatches)
	if err != nil {
		return Solution{}, err
	}
	layout, err := p.CoveredArea(area, npatches)
	if err != nil {
		return Solution{}, err
	}
	return Solution{PatchArea: area, Layout: layout}, nil
}
