package pot

import (
	"fmt"
	"math"
)

// Sum combines two potentials additively. Every mode distributes over the
// children by linearity of differentiation; the cutoff is the larger of the
// two, since the sum is non-zero wherever either child is.
type Sum struct {
	P1, P2 Potential
}

// Add builds the sum of two potentials. It is always legal; the tree is
// evaluated exactly as constructed.
func Add(p1, p2 Potential) *Sum {
	return &Sum{P1: p1, P2: p2}
}

func (s *Sum) Eval(r float64) (float64, error) {
	v1, err := s.P1.Eval(r)
	if err != nil {
		return 0, err
	}
	v2, err := s.P2.Eval(r)
	if err != nil {
		return 0, err
	}
	return v1 + v2, nil
}

func (s *Sum) Deriv(r float64) (float64, error) {
	d1, err := s.P1.Deriv(r)
	if err != nil {
		return 0, err
	}
	d2, err := s.P2.Deriv(r)
	if err != nil {
		return 0, err
	}
	return d1 + d2, nil
}

func (s *Sum) Deriv2(r float64) (float64, error) {
	d1, err := Deriv2(s.P1, r)
	if err != nil {
		return 0, err
	}
	d2, err := Deriv2(s.P2, r)
	if err != nil {
		return 0, err
	}
	return d1 + d2, nil
}

func (s *Sum) Grad(dr Vector) (Vector, error) {
	g1, err := Grad(s.P1, dr)
	if err != nil {
		return nil, err
	}
	g2, err := Grad(s.P2, dr)
	if err != nil {
		return nil, err
	}
	return g1.Add(g2), nil
}

func (s *Sum) EvalEnv(r float64, env Env) (float64, error) {
	v1, err := EvalEnv(s.P1, r, env)
	if err != nil {
		return 0, err
	}
	v2, err := EvalEnv(s.P2, r, env)
	if err != nil {
		return 0, err
	}
	return v1 + v2, nil
}

func (s *Sum) DerivEnv(r float64, env Env) (float64, error) {
	d1, err := DerivEnv(s.P1, r, env)
	if err != nil {
		return 0, err
	}
	d2, err := DerivEnv(s.P2, r, env)
	if err != nil {
		return 0, err
	}
	return d1 + d2, nil
}

func (s *Sum) Cutoff() float64 {
	return math.Max(s.P1.Cutoff(), s.P2.Cutoff())
}

func (s *Sum) String() string {
	return fmt.Sprintf("%s + %s", s.P1, s.P2)
}
