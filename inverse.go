package patch

// InverseFunctionValue solves fn(x) = y for x in [xmin, xmax].
//
// fn should be monotonic on the interval; otherwise any one of the solutions
// may be returned. If y lies outside the range of values fn takes at the ends
// of the interval, a [*RootBracketError] is returned.
func InverseFunctionValue(fn func(float64) float64, y, xmin, xmax, accuracy float64) (float64, error) {
	return FindRoot(func(x float64) float64 { return fn(x) - y }, xmin, xmax, accuracy)
}

// InverseArea finds the x in [xmin, xmax] at which the cumulative area
// function area reaches target.
//
// area is usually func(x) { return Area(f, xmin, x, accuracy) }, which is
// monotonic for nonnegative f, making the solution unique up to flat stretches
// of f. A target outside [area(xmin), area(xmax)] results in a
// [*RootBracketError].
//
// See [Problem.InverseArea] for a version that integrates incrementally.
func InverseArea(area func(float64) float64, target, xmin, xmax, accuracy float64) (float64, error) {
	return InverseFunctionValue(area, target, xmin, xmax, accuracy)
}

// InverseArea finds the x in [XMin, XMax] at which the cumulative area from
// XMin reaches target. It is equivalent to
//
//	InverseArea(p.CumulativeArea, target, p.XMin, p.XMax, p.Accuracy)
//
// but, instead of integrating from XMin for every probe, it only integrates
// between the previous and the current probe, which is considerably cheaper as
// the probes converge.
func (p Problem) InverseArea(target float64) (float64, error) {
	if target == 0 {
		return p.XMin, nil
	}
	acc := p.accuracy()
	total := p.TotalArea()

	xLast := p.XMin
	areaLast := 0.0
	// The bracket narrows geometrically, so the number of probes is about
	// log2 of the initial width over the accuracy. Split the accuracy budget
	// among them.
	n := 1.0
	for w := (p.XMax - p.XMin) / acc; w > 1 && n < 64; w /= 2 {
		n++
	}
	innerAcc := acc / n
	f := func(x float64) (float64, error) {
		areaLast += Area(p.Width, xLast, x, innerAcc)
		xLast = x
		return areaLast - target, nil
	}
	return findRootKnown(f, p.XMin, p.XMax, acc, -target, total-target)
}
