package autodiff

import "math"

// Dual is a dual number a + bε with ε² = 0. Arithmetic on duals carries
// first derivatives alongside values, so evaluating a function built from
// these operations with Du=1 yields its exact derivative at Re.
type Dual struct {
	Re float64
	Du float64
}

// Const returns a dual with zero derivative part.
func Const(c float64) Dual {
	return Dual{Re: c}
}

func (a Dual) Add(b Dual) Dual {
	return Dual{a.Re + b.Re, a.Du + b.Du}
}

func (a Dual) Sub(b Dual) Dual {
	return Dual{a.Re - b.Re, a.Du - b.Du}
}

func (a Dual) Mul(b Dual) Dual {
	return Dual{a.Re * b.Re, a.Du*b.Re + a.Re*b.Du}
}

func (a Dual) Div(b Dual) Dual {
	return Dual{a.Re / b.Re, (a.Du*b.Re - a.Re*b.Du) / (b.Re * b.Re)}
}

func (a Dual) Neg() Dual {
	return Dual{-a.Re, -a.Du}
}

// Scale multiplies by a plain constant.
func (a Dual) Scale(c float64) Dual {
	return Dual{c * a.Re, c * a.Du}
}

// Shift adds a plain constant.
func (a Dual) Shift(c float64) Dual {
	return Dual{a.Re + c, a.Du}
}

func (a Dual) Square() Dual {
	return Dual{a.Re * a.Re, 2 * a.Re * a.Du}
}

func (a Dual) Sin() Dual {
	return Dual{math.Sin(a.Re), math.Cos(a.Re) * a.Du}
}

func (a Dual) Cos() Dual {
	return Dual{math.Cos(a.Re), -math.Sin(a.Re) * a.Du}
}

func (a Dual) Exp() Dual {
	e := math.Exp(a.Re)
	return Dual{e, e * a.Du}
}

func (a Dual) Log() Dual {
	return Dual{math.Log(a.Re), a.Du / a.Re}
}

func (a Dual) Sqrt() Dual {
	s := math.Sqrt(a.Re)
	return Dual{s, a.Du / (2 * s)}
}

// Pow raises to a constant real power.
func (a Dual) Pow(p float64) Dual {
	return Dual{math.Pow(a.Re, p), p * math.Pow(a.Re, p-1) * a.Du}
}
