package patch

import (
	"errors"
	"slices"
	"testing"
)

func TestCoveredArea(t *testing.T) {
	covered, seps, err := CoveredArea(constant(1), 1, 2, 1, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3.0, covered, approx(1e-9))
	diff(t, []Interval{{1, 2}}, seps, approx(1e-6))
}

func TestCoveredAreaSeveralSeparators(t *testing.T) {
	p := Problem{Width: constant(2), XMin: 0, XMax: 20, SeparatorWidth: 0.5}
	layout, err := p.CoveredArea(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Patches are 1.5 wide, separators 0.5 wide and 1 in area.
	want := Layout{
		XMin:       0,
		XMax:       20,
		PatchArea:  3,
		Covered:    4*3 + 3*1,
		Separators: []Interval{{1.5, 2}, {3.5, 4}, {5.5, 6}},
	}
	diff(t, want, layout, approx(1e-6))
}

func TestCoveredAreaDegenerate(t *testing.T) {
	for _, n := range []int{0, 1} {
		calls := 0
		f := func(x float64) float64 {
			calls++
			return x
		}
		p := Problem{Width: f, XMin: 0, XMax: 1, SeparatorWidth: 0.1}
		layout, err := p.CoveredArea(0.25, n)
		if err != nil {
			t.Fatal(err)
		}
		if layout.Covered != 0.25 {
			t.Errorf("npatches=%d: covered %g, want 0.25", n, layout.Covered)
		}
		if len(layout.Separators) != 0 {
			t.Errorf("npatches=%d: got separators %v", n, layout.Separators)
		}
		if calls != 0 {
			t.Errorf("npatches=%d: width function was evaluated %d times", n, calls)
		}
	}
}

func TestCoveredAreaOverrun(t *testing.T) {
	// The second patch ends beyond XMax, so the second separator can't be
	// placed.
	p := Problem{Width: constant(1), XMin: 0, XMax: 3, SeparatorWidth: 1}
	_, err := p.CoveredArea(1.5, 3)
	var bracketErr *RootBracketError
	if !errors.As(err, &bracketErr) {
		t.Fatalf("got error %v, want a *RootBracketError", err)
	}
}

func TestCoveredAreaInvalid(t *testing.T) {
	tests := []struct {
		name     string
		p        Problem
		npatches int
		want     error
	}{
		{"empty interval", Problem{Width: linear, XMin: 1, XMax: 1}, 2, ErrInvalidInterval},
		{"reversed interval", Problem{Width: linear, XMin: 2, XMax: 1}, 2, ErrInvalidInterval},
		{"negative patches", Problem{Width: linear, XMin: 0, XMax: 1}, -1, ErrNegativePatchCount},
		{"negative separator", Problem{Width: linear, XMin: 0, XMax: 1, SeparatorWidth: -1}, 2, ErrNegativeSeparatorWidth},
		{"nil width", Problem{XMin: 0, XMax: 1}, 2, ErrNilWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.CoveredArea(0.1, tt.npatches)
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayoutPatches(t *testing.T) {
	l := Layout{
		XMin:       0,
		XMax:       10,
		Separators: []Interval{{1, 2}, {4, 4.5}},
	}
	got := slices.Collect(l.Patches())
	want := []Interval{{0, 1}, {2, 4}, {4.5, 10}}
	diff(t, want, got)

	got = slices.Collect(Layout{XMin: -1, XMax: 1}.Patches())
	diff(t, []Interval{{-1, 1}}, got)

	// Stopping early.
	for iv := range l.Patches() {
		diff(t, Interval{0, 1}, iv)
		break
	}
}

func TestIntervalWidth(t *testing.T) {
	if w := (Interval{1.5, 4}).Width(); w != 2.5 {
		t.Errorf("got %g, want 2.5", w)
	}
}
