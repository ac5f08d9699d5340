// Package calc provides finite-difference stencils for verifying analytic
// derivatives of potentials.
package calc

// Func is a scalar function that may fail, matching the shape of a
// potential's Eval bound to one argument.
type Func func(x float64) (float64, error)

// Deriv estimates f'(x) with a central difference of step h.
func Deriv(f Func, x, h float64) (float64, error) {
	hi, err := f(x + h)
	if err != nil {
		return 0, err
	}
	lo, err := f(x - h)
	if err != nil {
		return 0, err
	}
	return (hi - lo) / (2 * h), nil
}

// Deriv2 estimates f''(x) with the three-point central stencil of step h.
func Deriv2(f Func, x, h float64) (float64, error) {
	hi, err := f(x + h)
	if err != nil {
		return 0, err
	}
	mid, err := f(x)
	if err != nil {
		return 0, err
	}
	lo, err := f(x - h)
	if err != nil {
		return 0, err
	}
	return (hi - 2*mid + lo) / (h * h), nil
}
