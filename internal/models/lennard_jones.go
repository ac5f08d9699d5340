package models

import (
	"math"

	"github.com/san-kum/potlab/internal/pot"
)

const (
	DefaultEpsilon = 1.0
	DefaultSigma   = 1.0
	DefaultCutoff  = 2.5
)

// LennardJones is the 12-6 pair potential
// V(r) = 4ε[(σ/r)^12 - (σ/r)^6], zero beyond Rc.
type LennardJones struct {
	Epsilon float64
	Sigma   float64
	Rc      float64
}

func NewLennardJones() *LennardJones {
	return &LennardJones{
		Epsilon: DefaultEpsilon,
		Sigma:   DefaultSigma,
		Rc:      DefaultCutoff,
	}
}

func (l *LennardJones) Eval(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= l.Rc {
		return 0, nil
	}
	s6 := math.Pow(l.Sigma/r, 6)
	return 4 * l.Epsilon * (s6*s6 - s6), nil
}

func (l *LennardJones) Deriv(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= l.Rc {
		return 0, nil
	}
	s6 := math.Pow(l.Sigma/r, 6)
	return 24 * l.Epsilon * (s6 - 2*s6*s6) / r, nil
}

func (l *LennardJones) Deriv2(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= l.Rc {
		return 0, nil
	}
	s6 := math.Pow(l.Sigma/r, 6)
	return 4 * l.Epsilon * (156*s6*s6 - 42*s6) / (r * r), nil
}

func (l *LennardJones) Grad(dr pot.Vector) (pot.Vector, error) {
	return pot.PairGrad(l, dr)
}

func (l *LennardJones) Cutoff() float64 { return l.Rc }

func (l *LennardJones) String() string { return "lj" }
