package pot

// Args carries the positional arguments of a Call. R is the pair separation
// for the scalar modes, Dr the separation vector for Gradient mode, and a
// non-nil Env selects the extended (distance, environment) arity.
type Args struct {
	R   float64
	Dr  Vector
	Env Env
}

// Result holds the outcome of a Call. The scalar modes fill Scalar;
// Gradient mode fills Grad.
type Result struct {
	Scalar float64
	Grad   Vector
}

// Call is the uniform entry point: it routes a potential, a mode and the
// arguments to the matching capability method. New leaf types need no
// registration here; implementing the capability interfaces is enough.
func Call(p Potential, m Mode, a Args) (Result, error) {
	switch m {
	case Value:
		if a.Env != nil {
			v, err := EvalEnv(p, a.R, a.Env)
			return Result{Scalar: v}, err
		}
		v, err := p.Eval(a.R)
		return Result{Scalar: v}, err
	case First:
		if a.Env != nil {
			d, err := DerivEnv(p, a.R, a.Env)
			return Result{Scalar: d}, err
		}
		d, err := p.Deriv(a.R)
		return Result{Scalar: d}, err
	case Second:
		d, err := Deriv2(p, a.R)
		return Result{Scalar: d}, err
	case Gradient:
		if len(a.Dr) == 0 {
			return Result{}, ErrNoSeparation
		}
		g, err := Grad(p, a.Dr)
		return Result{Grad: g}, err
	default:
		return Result{}, ErrBadMode
	}
}

// Eval is the default-mode call: the energy at separation r.
func Eval(p Potential, r float64) (float64, error) {
	return p.Eval(r)
}

// Deriv evaluates the first distance derivative at r.
func Deriv(p Potential, r float64) (float64, error) {
	return p.Deriv(r)
}

// Deriv2 evaluates the second distance derivative at r, or reports the
// capability as unsupported.
func Deriv2(p Potential, r float64) (float64, error) {
	if d, ok := p.(SecondDeriver); ok {
		return d.Deriv2(r)
	}
	return 0, unsupported(p, "second derivative")
}

// Grad evaluates the gradient with respect to the separation vector dr, or
// reports the capability as unsupported.
func Grad(p Potential, dr Vector) (Vector, error) {
	if g, ok := p.(Gradienter); ok {
		return g.Grad(dr)
	}
	return nil, unsupported(p, "gradient")
}

// EvalEnv evaluates the extended (distance, environment) arity, or reports
// the capability as unsupported.
func EvalEnv(p Potential, r float64, env Env) (float64, error) {
	if e, ok := p.(EnvPotential); ok {
		return e.EvalEnv(r, env)
	}
	return 0, unsupported(p, "environment form")
}

// DerivEnv evaluates the first derivative of the extended arity, or reports
// the capability as unsupported.
func DerivEnv(p Potential, r float64, env Env) (float64, error) {
	if e, ok := p.(EnvPotential); ok {
		return e.DerivEnv(r, env)
	}
	return 0, unsupported(p, "environment form")
}
