package patch

import (
	"math"
)

// FindRoot finds a zero crossing of f in the bracket [a, b].
//
// f(a) and f(b) must have opposite signs, otherwise a [*RootBracketError] is
// returned. If either of them is exactly zero, that end of the bracket is
// returned without further evaluations. NaN never counts as a sign.
//
// The search uses the [ITP method], which is as robust as bisection but
// typically converges much faster on smooth functions. The result is within
// accuracy of a zero crossing. If accuracy isn't positive, [DefaultAccuracy]
// is used.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func FindRoot(f func(float64) float64, a, b, accuracy float64) (float64, error) {
	return findRoot(func(x float64) (float64, error) { return f(x), nil }, a, b, accuracy)
}

// findRoot is [FindRoot] for functions that can fail. The first error returned
// by f aborts the search and is returned as is.
func findRoot(f func(float64) (float64, error), a, b, accuracy float64) (float64, error) {
	ya, err := f(a)
	if err != nil {
		return 0, err
	}
	yb, err := f(b)
	if err != nil {
		return 0, err
	}
	return findRootKnown(f, a, b, accuracy, ya, yb)
}

// findRootKnown is [findRoot] for callers that already know f(a) and f(b).
func findRootKnown(f func(float64) (float64, error), a, b, accuracy, ya, yb float64) (float64, error) {
	switch {
	case ya == 0:
		return a, nil
	case yb == 0:
		return b, nil
	case math.IsNaN(ya) || math.IsNaN(yb) || (ya > 0) == (yb > 0):
		return 0, &RootBracketError{A: a, B: b, FA: ya, FB: yb}
	}
	if a > b {
		a, b = b, a
		ya, yb = yb, ya
	}
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	// solveITP needs ya < 0 < yb.
	g := f
	if ya > 0 {
		g = func(x float64) (float64, error) {
			y, err := f(x)
			return -y, err
		}
		ya, yb = -ya, -yb
	}
	// Keep 2^nmax from overflowing, and don't ask for more precision than the
	// bracket's magnitude can represent.
	epsilon := max(accuracy, (b-a)*0x1p-60, max(math.Abs(a), math.Abs(b))*0x1p-52)
	return solveITP(g, a, b, epsilon, 1, 0.2/(b-a), ya, yb)
}

// solveITP solves f for a zero crossing using the ITP method, as described in
// the paper [An Enhancement of the Bisection Method Average Performance
// Preserving Minmax Optimality].
//
// It is assumed that ya < 0.0 and yb > 0.0.
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// because it avoids an expensive floating point exponentiation. n0 controls the
// relative impact of the bisection and secant components: with 0, the number of
// iterations never exceeds that of bisection, with 1 the secant method gets more
// of a chance on smooth functions at the cost of at most one more iteration.
// The paper suggests k1 = 0.2 / (b - a).
//
// When f is monotonic, the result is within epsilon of the zero crossing.
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func solveITP(
	f func(float64) (float64, error),
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) (float64, error) {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		mid := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		// k2 = 2
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(mid-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = mid
		}
		var xitp float64
		if math.Abs(xt-mid) <= r {
			xitp = xt
		} else {
			xitp = mid - math.Copysign(r, sigma)
		}
		yitp, err := f(xitp)
		if err != nil {
			return 0, err
		}
		switch {
		case yitp > 0.0:
			b = xitp
			yb = yitp
		case yitp < 0.0:
			a = xitp
			ya = yitp
		case yitp == 0.0:
			return xitp, nil
		default:
			// NaN inside a valid bracket. Bisect towards the left, the only
			// choice that doesn't depend on the value.
			b = xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b), nil
}
