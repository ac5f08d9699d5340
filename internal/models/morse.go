package models

import (
	"math"

	"github.com/san-kum/potlab/internal/pot"
)

const (
	DefaultDepth = 1.0
	DefaultWidth = 1.5
	DefaultR0    = 1.2
)

// Morse is the anharmonic bond potential
// V(r) = D(1 - e^{-a(r-r0)})^2 - D, zero beyond Rc.
type Morse struct {
	Depth float64 // well depth D
	Width float64 // inverse width a
	R0    float64 // equilibrium separation
	Rc    float64
}

func NewMorse() *Morse {
	return &Morse{
		Depth: DefaultDepth,
		Width: DefaultWidth,
		R0:    DefaultR0,
		Rc:    3.0,
	}
}

func (m *Morse) Eval(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= m.Rc {
		return 0, nil
	}
	u := math.Exp(-m.Width * (r - m.R0))
	return m.Depth*(1-u)*(1-u) - m.Depth, nil
}

func (m *Morse) Deriv(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= m.Rc {
		return 0, nil
	}
	u := math.Exp(-m.Width * (r - m.R0))
	return 2 * m.Width * m.Depth * u * (1 - u), nil
}

func (m *Morse) Deriv2(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= m.Rc {
		return 0, nil
	}
	u := math.Exp(-m.Width * (r - m.R0))
	return 2 * m.Width * m.Width * m.Depth * u * (2*u - 1), nil
}

func (m *Morse) Grad(dr pot.Vector) (pot.Vector, error) {
	return pot.PairGrad(m, dr)
}

func (m *Morse) Cutoff() float64 { return m.Rc }

func (m *Morse) String() string { return "morse" }
