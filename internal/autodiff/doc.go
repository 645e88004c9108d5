// Package autodiff provides forward-mode automatic differentiation over
// dual numbers.
//
// Target functions are written against the [Dual] type instead of float64:
//
//	f := func(x autodiff.Dual) autodiff.Dual { return x.Sin() }
//	df := autodiff.Derivative(f)
//	df(0) // 1, exactly cos(0)
//
// Derivatives are exact to floating-point precision, not finite-difference
// approximations. Vector functions get an n×n Jacobian via [Jacobian], one
// column per seeded input component.
package autodiff
