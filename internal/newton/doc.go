// Package newton implements undamped Newton–Raphson root finding with
// derivatives supplied by the autodiff package.
//
// A solve is one synchronous call owning all of its state, so independent
// solves may run concurrently without coordination. Two step strategies are
// available for vector systems: explicit Jacobian inversion and a
// minimum-norm least-squares solve. The method is plain Newton, with no
// line search or damping; it is expected to diverge on hostile inputs.
package newton
