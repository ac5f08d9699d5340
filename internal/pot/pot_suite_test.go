package pot_test

import (
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/potlab/internal/pot"
)

func TestPot(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Potential Algebra Suite")
}

// poly is a full-capability stub leaf V(r) = a r^n.
type poly struct {
	name string
	a    float64
	n    float64
	rc   float64
}

func (p poly) Eval(r float64) (float64, error) { return p.a * pow(r, p.n), nil }
func (p poly) Deriv(r float64) (float64, error) {
	return p.a * p.n * pow(r, p.n-1), nil
}
func (p poly) Deriv2(r float64) (float64, error) {
	return p.a * p.n * (p.n - 1) * pow(r, p.n-2), nil
}
func (p poly) Grad(dr pot.Vector) (pot.Vector, error) { return pot.PairGrad(p, dr) }
func (p poly) Cutoff() float64                        { return p.rc }
func (p poly) String() string                         { return p.name }

func pow(x, n float64) float64 {
	result := 1.0
	for i := 0; i < int(n); i++ {
		result *= x
	}
	return result
}

// envScaled is a stub implementing the extended arity: V(r, c) = k c r^2,
// with the plain arity fixed at c = 1.
type envScaled struct {
	name string
	k    float64
	rc   float64
}

func (e envScaled) Eval(r float64) (float64, error)  { return e.EvalEnv(r, nil) }
func (e envScaled) Deriv(r float64) (float64, error) { return e.DerivEnv(r, nil) }
func (e envScaled) EvalEnv(r float64, env pot.Env) (float64, error) {
	return e.k * e.scale(env) * r * r, nil
}
func (e envScaled) DerivEnv(r float64, env pot.Env) (float64, error) {
	return 2 * e.k * e.scale(env) * r, nil
}
func (e envScaled) scale(env pot.Env) float64 {
	if env == nil {
		return 1
	}
	return env.(float64)
}
func (e envScaled) Cutoff() float64 { return e.rc }
func (e envScaled) String() string  { return e.name }

// bare supports only value and first derivative: V(r) = r.
type bare struct {
	name string
	rc   float64
}

func (b bare) Eval(r float64) (float64, error)  { return r, nil }
func (b bare) Deriv(r float64) (float64, error) { return 1, nil }
func (b bare) Cutoff() float64                  { return b.rc }
func (b bare) String() string                   { return b.name }

var errBoom = errors.New("boom")

// failing always errors, for propagation tests.
type failing struct{}

func (failing) Eval(r float64) (float64, error)  { return 0, errBoom }
func (failing) Deriv(r float64) (float64, error) { return 0, errBoom }
func (failing) Cutoff() float64                  { return 1 }
func (failing) String() string                   { return "fail" }

var _ = Describe("stub leaves", func() {
	It("satisfy the capability interfaces they claim", func() {
		var p pot.Potential = poly{name: "A", a: 1, n: 2, rc: 2}
		_, ok := p.(pot.SecondDeriver)
		Expect(ok).To(BeTrue())
		_, ok = p.(pot.Gradienter)
		Expect(ok).To(BeTrue())

		var b pot.Potential = bare{name: "B", rc: 1}
		_, ok = b.(pot.SecondDeriver)
		Expect(ok).To(BeFalse())
	})
})
