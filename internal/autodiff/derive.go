package autodiff

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Scalar is a differentiable scalar target function built from Dual operations.
type Scalar func(x Dual) Dual

// Vector is a differentiable vector target function. It must be
// dimension-preserving: len(output) == len(input).
type Vector func(x []Dual) []Dual

// JacobianFunc evaluates the Jacobian of a Vector at x. If dst is non-nil it
// is reused as the destination, following the gonum convention.
type JacobianFunc func(x []float64, dst *mat.Dense) (*mat.Dense, error)

// DimensionError reports a dimension-preserving violation: the function
// produced an output whose length differs from its input's.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("autodiff: function output has dimension %d, want %d", e.Got, e.Want)
}

// Derivative returns the exact derivative function of f.
func Derivative(f Scalar) func(float64) float64 {
	return func(x float64) float64 {
		return f(Dual{Re: x, Du: 1}).Du
	}
}

// Eval evaluates f as a plain scalar function.
func Eval(f Scalar, x float64) float64 {
	return f(Dual{Re: x}).Re
}

// Jacobian returns a function evaluating the exact n×n Jacobian of F.
// Each evaluation runs F once per input component with a unit dual seed
// in that component, filling one Jacobian column at a time.
func Jacobian(F Vector) JacobianFunc {
	return func(x []float64, dst *mat.Dense) (*mat.Dense, error) {
		n := len(x)
		if dst == nil {
			dst = mat.NewDense(n, n, nil)
		}
		args := make([]Dual, n)
		for j := 0; j < n; j++ {
			for i, v := range x {
				args[i] = Dual{Re: v}
			}
			args[j].Du = 1
			out := F(args)
			if len(out) != n {
				return nil, &DimensionError{Want: n, Got: len(out)}
			}
			for i, v := range out {
				dst.Set(i, j, v.Du)
			}
		}
		return dst, nil
	}
}

// EvalVec evaluates F as a plain vector function, writing into dst when it
// has the right length.
func EvalVec(F Vector, x, dst []float64) ([]float64, error) {
	args := make([]Dual, len(x))
	for i, v := range x {
		args[i] = Dual{Re: v}
	}
	out := F(args)
	if len(out) != len(x) {
		return nil, &DimensionError{Want: len(x), Got: len(out)}
	}
	if len(dst) != len(out) {
		dst = make([]float64, len(out))
	}
	for i, v := range out {
		dst[i] = v.Re
	}
	return dst, nil
}
