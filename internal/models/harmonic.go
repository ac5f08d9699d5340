package models

import "github.com/san-kum/potlab/internal/pot"

const DefaultStiffness = 10.0

// Harmonic is the spring bond potential V(r) = k/2 (r-r0)^2, zero beyond Rc.
type Harmonic struct {
	K  float64
	R0 float64
	Rc float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{K: DefaultStiffness, R0: 1.0, Rc: 2.0}
}

func (h *Harmonic) Eval(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= h.Rc {
		return 0, nil
	}
	d := r - h.R0
	return 0.5 * h.K * d * d, nil
}

func (h *Harmonic) Deriv(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= h.Rc {
		return 0, nil
	}
	return h.K * (r - h.R0), nil
}

func (h *Harmonic) Deriv2(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= h.Rc {
		return 0, nil
	}
	return h.K, nil
}

func (h *Harmonic) Grad(dr pot.Vector) (pot.Vector, error) {
	return pot.PairGrad(h, dr)
}

func (h *Harmonic) Cutoff() float64 { return h.Rc }

func (h *Harmonic) String() string { return "harmonic" }
