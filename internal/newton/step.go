package newton

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/rootfind/internal/autodiff"
)

// Singular values below rcond times the largest are treated as zero when
// ranking the Jacobian for the least-squares solve.
const rcond = 1e-15

// stepper computes one Newton direction. In compiled mode the gonum
// workspaces are allocated once and reused every iteration; otherwise each
// call assembles them fresh. Both modes run identical arithmetic, so the
// iterates they produce are bitwise equal.
type stepper struct {
	strategy Strategy
	F        autodiff.Vector
	jacobian autodiff.JacobianFunc

	jac   *mat.Dense
	inv   *mat.Dense
	delta *mat.VecDense
	fx    []float64
}

func newStepper(F autodiff.Vector, strategy Strategy, n int, compiled bool) *stepper {
	s := &stepper{
		strategy: strategy,
		F:        F,
		jacobian: autodiff.Jacobian(F),
	}
	if compiled {
		s.jac = mat.NewDense(n, n, nil)
		s.inv = mat.NewDense(n, n, nil)
		s.delta = mat.NewVecDense(n, nil)
		s.fx = make([]float64, n)
	}
	return s
}

// step returns the Newton direction delta and the residual F(x). The next
// iterate is x - delta. In compiled mode the returned slices are reused on
// the following call.
func (s *stepper) step(x []float64) (delta, fx []float64, err error) {
	fx, err = autodiff.EvalVec(s.F, x, s.fx)
	if err != nil {
		return nil, nil, err
	}
	jac, err := s.jacobian(x, s.jac)
	if err != nil {
		return nil, nil, err
	}

	dst := s.delta
	if dst == nil {
		dst = mat.NewVecDense(len(x), nil)
	}
	if err := s.solve(dst, jac, fx); err != nil {
		return nil, nil, err
	}
	return dst.RawVector().Data, fx, nil
}

func (s *stepper) solve(dst *mat.VecDense, jac *mat.Dense, fx []float64) error {
	b := mat.NewVecDense(len(fx), fx)

	switch s.strategy {
	case LeastSquares:
		var svd mat.SVD
		if ok := svd.Factorize(jac, mat.SVDThin); !ok {
			return fmt.Errorf("newton: svd factorization failed")
		}
		rank := svd.Rank(rcond)
		if rank == 0 {
			return fmt.Errorf("newton: jacobian has rank zero: %w", ErrSingular)
		}
		svd.SolveVecTo(dst, b, rank)
	default:
		inv := s.inv
		if inv == nil {
			inv = &mat.Dense{}
		}
		if err := inv.Inverse(jac); err != nil {
			return fmt.Errorf("newton: jacobian not invertible: %w", ErrSingular)
		}
		dst.MulVec(inv, b)
	}
	return nil
}
