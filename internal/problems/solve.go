package problems

import (
	"fmt"

	"github.com/san-kum/rootfind/internal/autodiff"
	"github.com/san-kum/rootfind/internal/newton"
)

// Solve runs the Newton solver on the problem from x0, or from the
// problem's default starting point when x0 is nil. Scalar problems go
// through the 1D iterator; the result is reported in vector form either way.
func (p *Problem) Solve(x0 []float64, opts newton.Options) (newton.Result, error) {
	if x0 == nil {
		x0 = p.X0
	}
	if len(x0) != p.Dim {
		return newton.Result{}, fmt.Errorf("problem %s wants dimension %d, got initial guess of length %d", p.Name, p.Dim, len(x0))
	}

	if p.Dim == 1 {
		res, err := newton.Solve1D(p.Scalar, x0[0], opts)
		return newton.Result{
			Root:       []float64{res.Root},
			Converged:  res.Converged,
			Iterations: res.Iterations,
		}, err
	}
	return newton.Solve(p.F, x0, opts)
}

// Residual evaluates the problem's function at x.
func (p *Problem) Residual(x []float64) ([]float64, error) {
	if p.Dim == 1 {
		return []float64{autodiff.Eval(p.Scalar, x[0])}, nil
	}
	return autodiff.EvalVec(p.F, x, nil)
}
