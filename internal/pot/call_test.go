package pot_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/potlab/internal/pot"
)

var _ = Describe("Call", func() {
	It("routes each mode to the matching capability", func() {
		res, err := pot.Call(pa, pot.Value, pot.Args{R: 1.5})
		Expect(err).NotTo(HaveOccurred())
		want, _ := pa.Eval(1.5)
		Expect(res.Scalar).To(Equal(want))

		res, err = pot.Call(pa, pot.First, pot.Args{R: 1.5})
		Expect(err).NotTo(HaveOccurred())
		want, _ = pa.Deriv(1.5)
		Expect(res.Scalar).To(Equal(want))

		res, err = pot.Call(pa, pot.Second, pot.Args{R: 1.5})
		Expect(err).NotTo(HaveOccurred())
		want, _ = pa.Deriv2(1.5)
		Expect(res.Scalar).To(Equal(want))

		res, err = pot.Call(pa, pot.Gradient, pot.Args{Dr: pot.Vector{1.5, 0}})
		Expect(err).NotTo(HaveOccurred())
		wantG, _ := pa.Grad(pot.Vector{1.5, 0})
		Expect(res.Grad).To(Equal(wantG))
	})

	It("selects the extended arity when an environment is supplied", func() {
		e := envScaled{name: "E", k: 1, rc: 2}
		res, err := pot.Call(e, pot.Value, pot.Args{R: 1.2, Env: 2.0})
		Expect(err).NotTo(HaveOccurred())
		want, _ := e.EvalEnv(1.2, 2.0)
		Expect(res.Scalar).To(Equal(want))
	})

	It("rejects unknown modes", func() {
		_, err := pot.Call(pa, pot.Mode(42), pot.Args{R: 1})
		Expect(err).To(MatchError(pot.ErrBadMode))
	})

	It("requires a separation vector in gradient mode", func() {
		_, err := pot.Call(pa, pot.Gradient, pot.Args{R: 1.5})
		Expect(err).To(MatchError(pot.ErrNoSeparation))
	})
})

var _ = Describe("unsupported capabilities", func() {
	b := bare{name: "B", rc: 1.5}

	It("reports a gradient request on a derivative-only potential", func() {
		_, err := pot.Grad(b, pot.Vector{1, 0})
		Expect(err).To(MatchError(pot.ErrUnsupported))

		var ue *pot.UnsupportedError
		Expect(errors.As(err, &ue)).To(BeTrue())
		Expect(ue.Potential).To(Equal("B"))
		Expect(ue.Capability).To(Equal("gradient"))
	})

	It("reports a second derivative request on a derivative-only potential", func() {
		_, err := pot.Deriv2(b, 1.0)
		Expect(err).To(MatchError(pot.ErrUnsupported))
	})

	It("names the lacking child when a composite is asked", func() {
		s := pot.Add(pa, b)
		_, err := s.Deriv2(1.0)
		Expect(err).To(MatchError(pot.ErrUnsupported))

		var ue *pot.UnsupportedError
		Expect(errors.As(err, &ue)).To(BeTrue())
		Expect(ue.Potential).To(Equal("B"))
	})
})

var _ = Describe("error propagation", func() {
	It("returns a child's error unchanged from a sum", func() {
		s := pot.Add(pa, failing{})
		_, err := s.Eval(1.0)
		Expect(err).To(Equal(errBoom))
	})

	It("returns a child's error unchanged from a product derivative", func() {
		p := pot.Mul(failing{}, pb)
		_, err := p.Deriv(1.0)
		Expect(err).To(Equal(errBoom))
	})

	It("never substitutes a fallback value", func() {
		p := pot.Mul(pa, failing{})
		v, err := p.Eval(1.0)
		Expect(err).To(HaveOccurred())
		Expect(v).To(BeZero())
	})
})
