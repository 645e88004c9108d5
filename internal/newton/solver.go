package newton

import (
	"fmt"
	"math"

	"github.com/san-kum/rootfind/internal/autodiff"
)

// Solve runs undamped Newton–Raphson on the dimension-preserving system F
// starting from x0. The Jacobian function is derived once, before the loop,
// and reused for every iteration. The solve stops when the componentwise
// maximum difference between successive iterates drops strictly below the
// tolerance, or runs out of budget and returns the last iterate with
// Converged=false.
//
// The stopping test is increment-based, not residual-based: steps that
// shrink for reasons other than proximity to a root (a near-flat Jacobian)
// report convergence anyway.
func Solve(F autodiff.Vector, x0 []float64, opts Options) (Result, error) {
	if len(x0) == 0 {
		return Result{}, fmt.Errorf("newton: initial guess must not be empty")
	}
	opts = opts.withDefaults(DefaultTolerance)

	st := newStepper(F, opts.Strategy, len(x0), opts.Compiled)

	cur := append([]float64(nil), x0...)
	prev := append([]float64(nil), x0...)

	status := Running
	iters := 0
	for status == Running {
		delta, fx, err := st.step(cur)
		if err != nil {
			return Result{Root: cur, Iterations: iters}, err
		}
		for _, ob := range opts.Observers {
			ob.OnIteration(iters, cur, fx)
		}
		copy(prev, cur)
		for i := range cur {
			cur[i] -= delta[i]
		}
		iters++
		switch {
		case maxAbsDiff(cur, prev) < opts.Tolerance:
			status = Converged
		case iters >= opts.MaxIter:
			status = Exhausted
		}
	}

	return Result{Root: cur, Converged: status == Converged, Iterations: iters}, nil
}

// Solve1D runs Newton–Raphson on a scalar function with the step f(x)/f'(x).
// The derivative function is derived once, up front. An indeterminate step
// (f and f' both exactly zero) aborts with ErrSingular; a zero derivative
// with nonzero residual produces an infinite step and the solve runs on to
// exhaustion like any other diverging iteration.
func Solve1D(f autodiff.Scalar, x0 float64, opts Options) (Result1D, error) {
	opts = opts.withDefaults(DefaultTolerance1D)

	df := autodiff.Derivative(f)
	// The whole per-iteration update is assembled once per call; Compiled
	// changes nothing further in the scalar case.
	step := func(x float64) (float64, float64, error) {
		fx := autodiff.Eval(f, x)
		d := df(x)
		if d == 0 && fx == 0 {
			return 0, fx, fmt.Errorf("newton: f and f' both zero at x=%g: %w", x, ErrSingular)
		}
		return fx / d, fx, nil
	}

	cur, prev := x0, x0
	status := Running
	iters := 0
	for status == Running {
		delta, fx, err := step(cur)
		if err != nil {
			return Result1D{Root: cur, Iterations: iters}, err
		}
		for _, ob := range opts.Observers {
			ob.OnIteration(iters, []float64{cur}, []float64{fx})
		}
		prev = cur
		cur -= delta
		iters++
		switch {
		case math.Abs(cur-prev) < opts.Tolerance:
			status = Converged
		case iters >= opts.MaxIter:
			status = Exhausted
		}
	}

	return Result1D{Root: cur, Converged: status == Converged, Iterations: iters}, nil
}

func maxAbsDiff(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			// a NaN iterate never counts as converged
			return d
		}
		if d > max {
			max = d
		}
	}
	return max
}
