package newton

import "fmt"

const (
	// DefaultTolerance is the successive-difference stopping tolerance
	// for vector solves.
	DefaultTolerance = 1e-10
	// DefaultTolerance1D is the tighter default for scalar solves.
	DefaultTolerance1D = 1e-16
	// DefaultMaxIter caps the iteration count before a solve gives up.
	DefaultMaxIter = 1000
)

// Strategy selects how the linear Newton step is computed from the
// Jacobian and the residual.
type Strategy int

const (
	// Inverse forms J⁻¹ explicitly and multiplies. Fails on singular J.
	Inverse Strategy = iota
	// LeastSquares computes the minimum-norm solution of J·s = F(x),
	// degrading gracefully for near-singular Jacobians.
	LeastSquares
)

func (s Strategy) String() string {
	switch s {
	case LeastSquares:
		return "lstsq"
	default:
		return "inverse"
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "inverse", "":
		return Inverse, nil
	case "lstsq", "least-squares":
		return LeastSquares, nil
	default:
		return Inverse, fmt.Errorf("unknown strategy: %s", name)
	}
}

// Status is the iterator state. A solve starts Running and ends in exactly
// one of the two terminal states.
type Status int

const (
	Running Status = iota
	Converged
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "running"
	}
}

// Observer is notified once per iteration with the current iterate and the
// residual evaluated there, before the update is applied. Both slices may
// be reused by the solver; observers must copy what they keep.
type Observer interface {
	OnIteration(iter int, x, fx []float64)
}

// Options configure one solve call. Zero values fall back to defaults.
type Options struct {
	Tolerance float64
	MaxIter   int
	Strategy  Strategy
	// Compiled builds the per-iteration update once per solve call with
	// its gonum workspaces preallocated and reused across iterations.
	// Results are identical to the uncompiled path.
	Compiled  bool
	Observers []Observer
}

func (o Options) withDefaults(tol float64) Options {
	if o.Tolerance <= 0 {
		o.Tolerance = tol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	return o
}

// Result of a vector solve. Converged=false means the iteration budget was
// exhausted and Root holds the last iterate, not an error condition.
type Result struct {
	Root       []float64
	Converged  bool
	Iterations int
}

// Result1D is the scalar counterpart of Result.
type Result1D struct {
	Root       float64
	Converged  bool
	Iterations int
}
