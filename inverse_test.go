package patch

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestInverseFunctionValue(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(float64) float64
		y          float64
		xmin, xmax float64
		want       float64
	}{
		{"identity", linear, 2, 0, 3, 2},
		{"identity negative start", linear, 2, -1, 3, 2},
		{"quadratic", Poly{1, 1, 1}.Eval, 3, 0, 4, 1},
		{"shifted square", Poly{1, 0, 1}.Eval, 5, 0, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InverseFunctionValue(tt.fn, tt.y, tt.xmin, tt.xmax, 0)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, approx(1e-4))
		})
	}
}

func TestInverseArea(t *testing.T) {
	tests := []struct {
		xmin, xmax float64
		target     float64
		want       float64
	}{
		{0, 3, 4.5, 3},
		{0, 4, 2, 2},
		{0, 4, 0, 0},
	}
	for _, tt := range tests {
		area := func(x float64) float64 { return Area(linear, tt.xmin, x, 0) }
		got, err := InverseArea(area, tt.target, tt.xmin, tt.xmax, 0)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got, approx(1e-4))

		p := Problem{Width: linear, XMin: tt.xmin, XMax: tt.xmax}
		got, err = p.InverseArea(tt.target)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got, approx(1e-4))
	}
}

func TestInverseAreaOutOfRange(t *testing.T) {
	p := Problem{Width: linear, XMin: 0, XMax: 2}
	for _, target := range []float64{-1, 2.5} {
		_, err := p.InverseArea(target)
		if !errors.Is(err, ErrNoBracket) {
			t.Errorf("target %g: got error %v, want ErrNoBracket", target, err)
		}

		area := func(x float64) float64 { return Area(linear, 0, x, 0) }
		_, err = InverseArea(area, target, 0, 2, 0)
		if !errors.Is(err, ErrNoBracket) {
			t.Errorf("target %g: got error %v, want ErrNoBracket", target, err)
		}
	}
}

func TestInverseAreaRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	fs := []WidthFunc{
		linear,
		Poly{1, 0, 1}.Eval,
		func(x float64) float64 { return math.Sin(3*x) + 1.5 },
		func(x float64) float64 { return 1 + math.Abs(x-1) },
	}
	for _, f := range fs {
		p := Problem{Width: f, XMin: 0, XMax: 3}
		for range 20 {
			x0 := rng.Float64() * 3
			got, err := p.InverseArea(p.CumulativeArea(x0))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-x0) > 1e-4 {
				t.Errorf("round trip of %g gave %g", x0, got)
			}
		}
	}
}

func TestInverseAreaIncrementalMatchesDirect(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x) + 0.1 }
	p := Problem{Width: f, XMin: -1, XMax: 4}
	for _, target := range []float64{0.01, 0.5, 1, 2, 3} {
		direct, err := InverseArea(p.CumulativeArea, target, p.XMin, p.XMax, 0)
		if err != nil {
			t.Fatal(err)
		}
		incremental, err := p.InverseArea(target)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, direct, incremental, approx(1e-8))
	}
}
