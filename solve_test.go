package patch

import (
	"errors"
	"math"
	"testing"
)

func TestFindRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x, err := FindRoot(f, 1.0, 2.0, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestFindRootDecreasing(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) }
	x, err := FindRoot(f, 0, 3, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Pi/2, x, approx(1e-12))
}

func TestFindRootReversedBracket(t *testing.T) {
	x, err := FindRoot(func(x float64) float64 { return x - 0.25 }, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.25, x, approx(DefaultAccuracy))
}

func TestFindRootEndpoint(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x - 2
	}
	x, err := FindRoot(f, 0, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if x != 2 {
		t.Errorf("got %g, want exactly 2", x)
	}
	if calls != 2 {
		t.Errorf("f was called %d times, want 2", calls)
	}
}

func TestFindRootNoBracket(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
	}{
		{"both positive", func(x float64) float64 { return x*x + 1 }},
		{"both negative", func(x float64) float64 { return -x*x - 1 }},
		{"NaN", func(x float64) float64 { return math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindRoot(tt.f, -1, 1, 0)
			var bracketErr *RootBracketError
			if !errors.As(err, &bracketErr) {
				t.Fatalf("got error %v, want a *RootBracketError", err)
			}
			if !errors.Is(err, ErrNoBracket) {
				t.Errorf("%v doesn't match ErrNoBracket", err)
			}
			if bracketErr.A != -1 || bracketErr.B != 1 {
				t.Errorf("bracket is [%g, %g], want [-1, 1]", bracketErr.A, bracketErr.B)
			}
		})
	}
}

func TestFindRootFallible(t *testing.T) {
	errBoom := errors.New("boom")
	f := func(x float64) (float64, error) {
		if x > 0.5 && x < 1.5 {
			return 0, errBoom
		}
		return x - 1, nil
	}
	if _, err := findRoot(f, 0, 2, 0); err != errBoom {
		t.Errorf("got error %v, want %v", err, errBoom)
	}
}

func TestFindRootAccuracy(t *testing.T) {
	for _, acc := range []float64{1e-3, 1e-6, 1e-9, 1e-12} {
		x, err := FindRoot(func(x float64) float64 { return x*x - 2 }, 0, 2, acc)
		if err != nil {
			t.Fatal(err)
		}
		if d := math.Abs(x - math.Sqrt2); d > acc {
			t.Errorf("accuracy %g: %g > %g", acc, d, acc)
		}
	}
}

func TestFindRootLargeMagnitude(t *testing.T) {
	// The accuracy can't be achieved this far from zero; this mustn't loop
	// forever.
	x, err := FindRoot(func(x float64) float64 { return x - 1e12 - 0.5 }, 1e12, 1e12+1, 1e-15)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1e12+0.5, x, approx(1e-3))
}
