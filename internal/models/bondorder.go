package models

import (
	"math"

	"github.com/san-kum/potlab/internal/pot"
)

// BondEnv is the per-bond environment accepted by BondOrder: the local
// coordination of the bonded pair.
type BondEnv struct {
	Coordination float64
}

// BondOrder is a tight-binding style attraction
// V(r, env) = -A b(c) e^{-λr} with bond order b(c) = (1+c)^{-η}, where c is
// the coordination from the environment. The plain arity evaluates at zero
// coordination (b = 1).
type BondOrder struct {
	Prefactor float64 // A
	Decay     float64 // λ
	Screening float64 // η
	Rc        float64
}

func NewBondOrder() *BondOrder {
	return &BondOrder{Prefactor: 1.0, Decay: 2.0, Screening: 0.5, Rc: 3.0}
}

func (b *BondOrder) order(env pot.Env) (float64, error) {
	if env == nil {
		return 1, nil
	}
	be, ok := env.(BondEnv)
	if !ok {
		return 0, ErrEnvType
	}
	return math.Pow(1+be.Coordination, -b.Screening), nil
}

func (b *BondOrder) Eval(r float64) (float64, error) {
	return b.EvalEnv(r, nil)
}

func (b *BondOrder) Deriv(r float64) (float64, error) {
	return b.DerivEnv(r, nil)
}

func (b *BondOrder) Deriv2(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= b.Rc {
		return 0, nil
	}
	return -b.Prefactor * b.Decay * b.Decay * math.Exp(-b.Decay*r), nil
}

func (b *BondOrder) EvalEnv(r float64, env pot.Env) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= b.Rc {
		return 0, nil
	}
	bo, err := b.order(env)
	if err != nil {
		return 0, err
	}
	return -b.Prefactor * bo * math.Exp(-b.Decay*r), nil
}

func (b *BondOrder) DerivEnv(r float64, env pot.Env) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r >= b.Rc {
		return 0, nil
	}
	bo, err := b.order(env)
	if err != nil {
		return 0, err
	}
	return b.Prefactor * bo * b.Decay * math.Exp(-b.Decay*r), nil
}

func (b *BondOrder) Grad(dr pot.Vector) (pot.Vector, error) {
	return pot.PairGrad(b, dr)
}

func (b *BondOrder) Cutoff() float64 { return b.Rc }

func (b *BondOrder) String() string { return "bondorder" }
