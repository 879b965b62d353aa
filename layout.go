package patch

import (
	"iter"
)

// Interval is a range [Start, End] along the x axis.
type Interval struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Width returns End - Start.
func (iv Interval) Width() float64 {
	return iv.End - iv.Start
}

// Layout is the result of placing patches and separators from left to right.
type Layout struct {
	XMin, XMax float64
	PatchArea  float64
	// Covered is the total area consumed by all patches and separators.
	Covered float64
	// Separators are ordered from left to right.
	Separators []Interval
}

// Patches returns the patches of the layout, from left to right. Patches lie
// between the separators; the first one starts at XMin and the last one
// extends to XMax. The last patch only has exactly PatchArea when Covered
// equals the total area, that is, for layouts of optimized patch areas.
func (l Layout) Patches() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		start := l.XMin
		for _, sep := range l.Separators {
			if !yield(Interval{start, sep.Start}) {
				return
			}
			start = sep.End
		}
		yield(Interval{start, l.XMax})
	}
}

// CoveredArea places npatches patches of area patchArea from left to right,
// with a separator of width SeparatorWidth between each pair of neighbouring
// patches, and reports how much area that consumes.
//
// The first patch starts at XMin. Each following separator starts where the
// cumulative area reaches the area consumed so far, and consumes whatever area
// lies under its fixed width. For npatches of 0 or 1 there are no separators
// and Covered equals patchArea.
//
// Separators aren't checked against XMax. A layout that runs past XMax fails
// with a [*RootBracketError] when the next separator can't be placed.
func (p Problem) CoveredArea(patchArea float64, npatches int) (Layout, error) {
	if err := p.Validate(npatches); err != nil {
		return Layout{}, err
	}
	if p.Width == nil {
		return Layout{}, ErrNilWidth
	}

	layout := Layout{
		XMin:      p.XMin,
		XMax:      p.XMax,
		PatchArea: patchArea,
		Covered:   patchArea,
	}
	for range npatches - 1 {
		patchEnd, err := p.InverseArea(layout.Covered)
		if err != nil {
			return Layout{}, err
		}
		sepEnd := patchEnd + p.SeparatorWidth
		layout.Covered += p.Area(patchEnd, sepEnd) + patchArea
		layout.Separators = append(layout.Separators, Interval{patchEnd, sepEnd})
	}
	return layout, nil
}

// CoveredArea is a shorthand for [Problem.CoveredArea] using [DefaultAccuracy].
// It returns the covered area and the separators.
func CoveredArea(f WidthFunc, patchArea float64, npatches int, w, xmin, xmax float64) (float64, []Interval, error) {
	p := Problem{Width: f, XMin: xmin, XMax: xmax, SeparatorWidth: w}
	layout, err := p.CoveredArea(patchArea, npatches)
	if err != nil {
		return 0, nil, err
	}
	return layout.Covered, layout.Separators, nil
}
