package patch

import (
	"testing"
)

func TestPolyEval(t *testing.T) {
	p := Poly{1, -2, 3}
	for _, x := range []float64{-2, 0, 0.5, 3} {
		want := 1 - 2*x + 3*x*x
		if got := p.Eval(x); got != want {
			t.Errorf("p(%g) = %g, want %g", x, got, want)
		}
	}
	if got := (Poly{}).Eval(7); got != 0 {
		t.Errorf("empty polynomial evaluated to %g", got)
	}
}

func TestPolyIntegral(t *testing.T) {
	diff(t, Poly{0, 1, 0, 1.0 / 3.0}, Poly{1, 0, 1}.Antiderivative())
	diff(t, 14.0/3.0, Poly{1, 0, 1}.Integral(0, 2), approx(1e-12))
	diff(t, -14.0/3.0, Poly{1, 0, 1}.Integral(2, 0), approx(1e-12))
}

func TestPolySub(t *testing.T) {
	diff(t, Poly{1, -1, 1}, Poly{1, 0, 1}.Sub(Poly{0, 1}))
	diff(t, Poly{-1, 0, -2}, Poly{}.Sub(Poly{1, 0, 2}))
}

func TestPolyString(t *testing.T) {
	tests := []struct {
		p    Poly
		want string
	}{
		{nil, "0"},
		{Poly{0, 0}, "0"},
		{Poly{1, 0, 1}, "1 + x^2"},
		{Poly{0, 1}, "x"},
		{Poly{0, -1}, "-x"},
		{Poly{2, -3}, "2 - 3x"},
		{Poly{1, -1, 0.5}, "1 - x + 0.5x^2"},
		{Poly{-4}, "-4"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%#v: got %q, want %q", []float64(tt.p), got, tt.want)
		}
	}
}

func TestBandWidth(t *testing.T) {
	b := Band{Lower: Poly{-1}.Eval, Upper: Poly{1, 0, 1}.Eval}
	for _, x := range []float64{0, 1, 2} {
		if got, want := b.Width(x), x*x+2; got != want {
			t.Errorf("width at %g = %g, want %g", x, got, want)
		}
	}
}
