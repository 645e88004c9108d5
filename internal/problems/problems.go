package problems

import (
	"github.com/san-kum/rootfind/internal/autodiff"
)

// Problem is a named root-finding target with a default starting point.
// Scalar is set for 1-dimensional problems, F for vector problems; exactly
// one of the two is non-nil.
type Problem struct {
	Name   string
	Desc   string
	Dim    int
	Scalar autodiff.Scalar
	F      autodiff.Vector
	X0     []float64
	// Root is a known root for validation, nil when none exists or none
	// is known in closed form.
	Root []float64
}

// NewSine is f(x) = sin(x); roots at every integer multiple of pi.
func NewSine() *Problem {
	return &Problem{
		Name:   "sine",
		Desc:   "f(x) = sin(x)",
		Dim:    1,
		Scalar: func(x autodiff.Dual) autodiff.Dual { return x.Sin() },
		X0:     []float64{0.5},
		Root:   []float64{0},
	}
}

// NewCube is f(x) = x^3 - 8 with its real root at 2.
func NewCube() *Problem {
	return &Problem{
		Name:   "cube",
		Desc:   "f(x) = x^3 - 8",
		Dim:    1,
		Scalar: func(x autodiff.Dual) autodiff.Dual { return x.Pow(3).Shift(-8) },
		X0:     []float64{3},
		Root:   []float64{2},
	}
}

// NewNoRoot is f(x) = x^2 + 1, which has no real root; Newton oscillates
// or diverges and every solve exhausts its budget.
func NewNoRoot() *Problem {
	return &Problem{
		Name:   "noroot",
		Desc:   "f(x) = x^2 + 1 (no real root)",
		Dim:    1,
		Scalar: func(x autodiff.Dual) autodiff.Dual { return x.Square().Shift(1) },
		X0:     []float64{0},
	}
}

// NewParabola is f(x) = x^2. Its only root sits exactly where the
// derivative vanishes, so a solve started at 0 hits the singular case.
func NewParabola() *Problem {
	return &Problem{
		Name:   "parabola",
		Desc:   "f(x) = x^2 (flat derivative at the root)",
		Dim:    1,
		Scalar: func(x autodiff.Dual) autodiff.Dual { return x.Square() },
		X0:     []float64{0},
		Root:   []float64{0},
	}
}

// NewLinear2 is F(x) = A·x - b with an invertible 2x2 A; Newton is exact
// for linear systems and lands on A⁻¹·b in a single step.
func NewLinear2() *Problem {
	return &Problem{
		Name: "linear2",
		Desc: "F(x) = A·x - b, A = [[3,1],[1,2]], b = (9,8)",
		Dim:  2,
		F: func(x []autodiff.Dual) []autodiff.Dual {
			return []autodiff.Dual{
				x[0].Scale(3).Add(x[1]).Shift(-9),
				x[0].Add(x[1].Scale(2)).Shift(-8),
			}
		},
		X0:   []float64{0, 0},
		Root: []float64{2, 3},
	}
}

// NewCoupled2 is a coupled nonlinear 2-dimensional system mixing
// polynomial, trigonometric and exponential terms.
func NewCoupled2() *Problem {
	return &Problem{
		Name: "coupled2",
		Desc: "5x0^2 + x0·x1^2·sin^2(2x1) - 2, exp(x0-x1) + 4x1 - 3",
		Dim:  2,
		F: func(x []autodiff.Dual) []autodiff.Dual {
			s := x[1].Scale(2).Sin()
			return []autodiff.Dual{
				x[0].Square().Scale(5).Add(x[0].Mul(x[1].Square()).Mul(s.Square())).Shift(-2),
				x[0].Sub(x[1]).Exp().Add(x[1].Scale(4)).Shift(-3),
			}
		},
		X0: []float64{1, 1},
	}
}

// NewRosenbrock is the gradient of the Rosenbrock function; its root is
// the minimum at (1,1). Newton on a gradient is a stiff test for the step
// solvers since the Jacobian is the Hessian, which is badly conditioned
// along the valley.
func NewRosenbrock() *Problem {
	return &Problem{
		Name: "rosenbrock",
		Desc: "gradient of (1-x)^2 + 100(y-x^2)^2",
		Dim:  2,
		F: func(x []autodiff.Dual) []autodiff.Dual {
			d := x[1].Sub(x[0].Square())
			return []autodiff.Dual{
				x[0].Shift(-1).Scale(2).Add(x[0].Mul(d).Scale(-400)),
				d.Scale(200),
			}
		},
		X0:   []float64{1.2, 1.2},
		Root: []float64{1, 1},
	}
}
