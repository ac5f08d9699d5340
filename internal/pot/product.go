package pot

import (
	"fmt"
	"math"
)

// Product combines two potentials multiplicatively. Derivatives follow the
// product rule; the cutoff is the smaller of the two, since the product is
// forced to zero wherever either factor's support ends.
type Product struct {
	P1, P2 Potential
}

// Mul builds the product of two potentials. It is always legal; the tree is
// evaluated exactly as constructed.
func Mul(p1, p2 Potential) *Product {
	return &Product{P1: p1, P2: p2}
}

func (p *Product) Eval(r float64) (float64, error) {
	v1, err := p.P1.Eval(r)
	if err != nil {
		return 0, err
	}
	v2, err := p.P2.Eval(r)
	if err != nil {
		return 0, err
	}
	return v1 * v2, nil
}

// Deriv applies the product rule: (fg)' = f'g + fg'.
func (p *Product) Deriv(r float64) (float64, error) {
	v1, err := p.P1.Eval(r)
	if err != nil {
		return 0, err
	}
	v2, err := p.P2.Eval(r)
	if err != nil {
		return 0, err
	}
	d1, err := p.P1.Deriv(r)
	if err != nil {
		return 0, err
	}
	d2, err := p.P2.Deriv(r)
	if err != nil {
		return 0, err
	}
	return v1*d2 + d1*v2, nil
}

// Deriv2 applies the generalized product rule: (fg)'' = f''g + 2f'g' + fg''.
func (p *Product) Deriv2(r float64) (float64, error) {
	v1, err := p.P1.Eval(r)
	if err != nil {
		return 0, err
	}
	v2, err := p.P2.Eval(r)
	if err != nil {
		return 0, err
	}
	d1, err := p.P1.Deriv(r)
	if err != nil {
		return 0, err
	}
	d2, err := p.P2.Deriv(r)
	if err != nil {
		return 0, err
	}
	dd1, err := Deriv2(p.P1, r)
	if err != nil {
		return 0, err
	}
	dd2, err := Deriv2(p.P2, r)
	if err != nil {
		return 0, err
	}
	return dd1*v2 + 2*d1*d2 + v1*dd2, nil
}

// Grad applies the product rule with both factors evaluated at |dr|:
// grad(fg) = g(r)*grad(f) + f(r)*grad(g).
func (p *Product) Grad(dr Vector) (Vector, error) {
	r := dr.Norm()
	v1, err := p.P1.Eval(r)
	if err != nil {
		return nil, err
	}
	v2, err := p.P2.Eval(r)
	if err != nil {
		return nil, err
	}
	g1, err := Grad(p.P1, dr)
	if err != nil {
		return nil, err
	}
	g2, err := Grad(p.P2, dr)
	if err != nil {
		return nil, err
	}
	return g1.Scale(v2).Add(g2.Scale(v1)), nil
}

func (p *Product) EvalEnv(r float64, env Env) (float64, error) {
	v1, err := EvalEnv(p.P1, r, env)
	if err != nil {
		return 0, err
	}
	v2, err := EvalEnv(p.P2, r, env)
	if err != nil {
		return 0, err
	}
	return v1 * v2, nil
}

// DerivEnv applies the product rule with the environment threaded through
// both factors unchanged.
func (p *Product) DerivEnv(r float64, env Env) (float64, error) {
	v1, err := EvalEnv(p.P1, r, env)
	if err != nil {
		return 0, err
	}
	v2, err := EvalEnv(p.P2, r, env)
	if err != nil {
		return 0, err
	}
	d1, err := DerivEnv(p.P1, r, env)
	if err != nil {
		return 0, err
	}
	d2, err := DerivEnv(p.P2, r, env)
	if err != nil {
		return 0, err
	}
	return v1*d2 + d1*v2, nil
}

func (p *Product) Cutoff() float64 {
	return math.Min(p.P1.Cutoff(), p.P2.Cutoff())
}

func (p *Product) String() string {
	return fmt.Sprintf("%s * %s", p.P1, p.P2)
}
