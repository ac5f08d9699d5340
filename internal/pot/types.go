package pot

import "math"

// Vector is a small coordinate vector, typically a pair separation in 2D or
// 3D Cartesian coordinates.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v Vector) Add(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] + other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Env is opaque per-bond environment data for the extended (distance,
// environment) arity. Leaf potentials type-assert their own concrete
// environment type; the composition core threads the value through
// unchanged and never inspects it.
type Env any

// Mode selects which quantity an evaluation produces.
type Mode int

const (
	Value Mode = iota
	First
	Second
	Gradient
)

func (m Mode) String() string {
	switch m {
	case Value:
		return "value"
	case First:
		return "first"
	case Second:
		return "second"
	case Gradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to its Mode value. The empty string selects
// the default mode, Value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "value":
		return Value, nil
	case "first", "deriv":
		return First, nil
	case "second", "deriv2":
		return Second, nil
	case "gradient", "grad":
		return Gradient, nil
	default:
		return 0, ErrBadMode
	}
}

// Potential is the capability set every potential implements: energy, first
// distance derivative, cutoff radius and a display form. Evaluation is a
// pure function of the arguments.
type Potential interface {
	Eval(r float64) (float64, error)
	Deriv(r float64) (float64, error)
	Cutoff() float64
	String() string
}

// SecondDeriver is implemented by potentials that provide the second
// distance derivative.
type SecondDeriver interface {
	Deriv2(r float64) (float64, error)
}

// Gradienter is implemented by potentials that provide the gradient with
// respect to the separation vector.
type Gradienter interface {
	Grad(dr Vector) (Vector, error)
}

// EnvPotential is implemented by potentials that accept the extended
// (distance, environment) arity.
type EnvPotential interface {
	EvalEnv(r float64, env Env) (float64, error)
	DerivEnv(r float64, env Env) (float64, error)
}

// PairGrad derives the gradient of a radially symmetric potential from its
// distance derivative: dE/d(dr) = E'(|dr|) * dr/|dr|. Leaves with no
// angular dependence can implement Gradienter with it directly.
func PairGrad(p Potential, dr Vector) (Vector, error) {
	r := dr.Norm()
	if r == 0 {
		return make(Vector, len(dr)), nil
	}
	d, err := p.Deriv(r)
	if err != nil {
		return nil, err
	}
	return dr.Scale(d / r), nil
}
