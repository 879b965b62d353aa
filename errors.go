package patch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned when a problem's interval doesn't satisfy
	// XMin < XMax.
	ErrInvalidInterval = errors.New("patch: interval must satisfy xmin < xmax")

	// ErrNegativePatchCount is returned for a patch count below zero.
	ErrNegativePatchCount = errors.New("patch: negative patch count")

	// ErrNegativeSeparatorWidth is returned for a separator width below zero.
	ErrNegativeSeparatorWidth = errors.New("patch: negative separator width")

	// ErrNilWidth is returned when a problem has no width function.
	ErrNilWidth = errors.New("patch: nil width function")

	// ErrInfeasible matches every [*InfeasibleConstraintError].
	ErrInfeasible = errors.New("patch: unsatisfiable constraints")

	// ErrNoBracket matches every [*RootBracketError].
	ErrNoBracket = errors.New("patch: root not bracketed")
)

// InfeasibleConstraintError reports that the separators alone don't fit into
// the interval, no matter how small the patches are.
type InfeasibleConstraintError struct {
	SeparatorWidth float64
	NPatches       int
	// Span is XMax - XMin.
	Span float64
}

func (e *InfeasibleConstraintError) Error() string {
	return fmt.Sprintf("patch: unsatisfiable constraints: %d separators of width %g need at least %g, interval is %g wide",
		e.NPatches-1, e.SeparatorWidth, e.SeparatorWidth*float64(e.NPatches-1), e.Span)
}

func (e *InfeasibleConstraintError) Is(target error) bool {
	return target == ErrInfeasible
}

// RootBracketError reports that a function has the same sign at both ends of
// the interval it was supposed to be solved on, so the interval isn't known to
// contain a zero crossing.
type RootBracketError struct {
	// A and B are the ends of the bracket.
	A, B float64
	// FA and FB are the function values at A and B.
	FA, FB float64
}

func (e *RootBracketError) Error() string {
	return fmt.Sprintf("patch: root not bracketed: f(%g) = %g and f(%g) = %g must have opposite signs",
		e.A, e.FA, e.B, e.FB)
}

func (e *RootBracketError) Is(target error) bool {
	return target == ErrNoBracket
}
