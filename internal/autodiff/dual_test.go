package autodiff

import (
	"math"
	"testing"
)

func TestDerivativeElementary(t *testing.T) {
	tests := []struct {
		name string
		f    Scalar
		x    float64
		want float64
	}{
		{"sin", func(x Dual) Dual { return x.Sin() }, 0.3, math.Cos(0.3)},
		{"cos", func(x Dual) Dual { return x.Cos() }, 1.1, -math.Sin(1.1)},
		{"exp", func(x Dual) Dual { return x.Exp() }, 0.7, math.Exp(0.7)},
		{"log", func(x Dual) Dual { return x.Log() }, 2.5, 1 / 2.5},
		{"sqrt", func(x Dual) Dual { return x.Sqrt() }, 4.0, 0.25},
		{"square", func(x Dual) Dual { return x.Square() }, 3.0, 6.0},
		{"pow", func(x Dual) Dual { return x.Pow(3) }, 2.0, 12.0},
		{"scale-shift", func(x Dual) Dual { return x.Scale(5).Shift(-2) }, 1.0, 5.0},
	}

	for _, tt := range tests {
		df := Derivative(tt.f)
		got := df(tt.x)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: derivative at %g = %g, want %g", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestDerivativeProductQuotient(t *testing.T) {
	// f(x) = x^2 sin(x), f'(x) = 2x sin(x) + x^2 cos(x)
	f := func(x Dual) Dual { return x.Square().Mul(x.Sin()) }
	df := Derivative(f)
	x := 0.9
	want := 2*x*math.Sin(x) + x*x*math.Cos(x)
	if got := df(x); math.Abs(got-want) > 1e-12 {
		t.Errorf("product rule: got %g, want %g", got, want)
	}

	// g(x) = sin(x)/x, g'(x) = (x cos(x) - sin(x)) / x^2
	g := func(x Dual) Dual { return x.Sin().Div(x) }
	dg := Derivative(g)
	want = (x*math.Cos(x) - math.Sin(x)) / (x * x)
	if got := dg(x); math.Abs(got-want) > 1e-12 {
		t.Errorf("quotient rule: got %g, want %g", got, want)
	}
}

func TestEval(t *testing.T) {
	f := func(x Dual) Dual { return x.Exp().Sub(Const(1)) }
	if got := Eval(f, 0); got != 0 {
		t.Errorf("expected exp(0)-1 = 0, got %g", got)
	}
}
