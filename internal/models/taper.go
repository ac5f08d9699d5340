package models

import (
	"math"

	"github.com/san-kum/potlab/internal/pot"
)

// CosineTaper is a smooth switching function: 1 up to On, 0 beyond Off,
// half-cosine in between. Multiplying it onto another potential brings that
// potential continuously to zero at Off, which also becomes the product's
// cutoff.
type CosineTaper struct {
	On  float64
	Off float64
}

func NewCosineTaper() *CosineTaper {
	return &CosineTaper{On: 2.0, Off: 2.5}
}

func (c *CosineTaper) Eval(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	switch {
	case r <= c.On:
		return 1, nil
	case r >= c.Off:
		return 0, nil
	}
	x := (r - c.On) / (c.Off - c.On)
	return 0.5 * (1 + math.Cos(math.Pi*x)), nil
}

func (c *CosineTaper) Deriv(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r <= c.On || r >= c.Off {
		return 0, nil
	}
	w := c.Off - c.On
	x := (r - c.On) / w
	return -0.5 * math.Pi / w * math.Sin(math.Pi*x), nil
}

func (c *CosineTaper) Deriv2(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrDistance
	}
	if r <= c.On || r >= c.Off {
		return 0, nil
	}
	w := c.Off - c.On
	x := (r - c.On) / w
	return -0.5 * math.Pi * math.Pi / (w * w) * math.Cos(math.Pi*x), nil
}

func (c *CosineTaper) Grad(dr pot.Vector) (pot.Vector, error) {
	return pot.PairGrad(c, dr)
}

func (c *CosineTaper) Cutoff() float64 { return c.Off }

func (c *CosineTaper) String() string { return "taper" }
