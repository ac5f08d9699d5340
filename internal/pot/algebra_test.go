package pot_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/potlab/internal/pot"
)

const tol = 1e-12

var (
	pa = poly{name: "A", a: 2, n: 2, rc: 2.5}
	pb = poly{name: "B", a: -1, n: 3, rc: 3.0}
	pc = poly{name: "C", a: 0.5, n: 1, rc: 2.0}
)

var _ = Describe("Sum", func() {
	s := pot.Add(pa, pb)

	It("adds values", func() {
		for _, r := range []float64{0.5, 1.0, 1.7, 2.4} {
			v, err := s.Eval(r)
			Expect(err).NotTo(HaveOccurred())
			va, _ := pa.Eval(r)
			vb, _ := pb.Eval(r)
			Expect(v).To(Equal(va + vb))
		}
	})

	It("adds first derivatives", func() {
		d, err := s.Deriv(1.3)
		Expect(err).NotTo(HaveOccurred())
		da, _ := pa.Deriv(1.3)
		db, _ := pb.Deriv(1.3)
		Expect(d).To(Equal(da + db))
	})

	It("adds second derivatives", func() {
		d, err := s.Deriv2(1.3)
		Expect(err).NotTo(HaveOccurred())
		da, _ := pa.Deriv2(1.3)
		db, _ := pb.Deriv2(1.3)
		Expect(d).To(Equal(da + db))
	})

	It("adds gradients componentwise", func() {
		dr := pot.Vector{0.8, -0.6, 0.3}
		g, err := s.Grad(dr)
		Expect(err).NotTo(HaveOccurred())
		ga, _ := pa.Grad(dr)
		gb, _ := pb.Grad(dr)
		for i := range g {
			Expect(g[i]).To(BeNumerically("~", ga[i]+gb[i], tol))
		}
	})

	It("takes the larger cutoff", func() {
		Expect(s.Cutoff()).To(Equal(3.0))
	})

	It("is associative in effect", func() {
		left := pot.Add(pot.Add(pa, pb), pc)
		right := pot.Add(pa, pot.Add(pb, pc))
		for _, r := range []float64{0.4, 1.0, 1.9} {
			vl, err := left.Eval(r)
			Expect(err).NotTo(HaveOccurred())
			vr, err := right.Eval(r)
			Expect(err).NotTo(HaveOccurred())
			Expect(vl).To(BeNumerically("~", vr, tol))
		}
	})
})

var _ = Describe("Product", func() {
	p := pot.Mul(pa, pb)

	It("multiplies values", func() {
		for _, r := range []float64{0.5, 1.0, 1.7} {
			v, err := p.Eval(r)
			Expect(err).NotTo(HaveOccurred())
			va, _ := pa.Eval(r)
			vb, _ := pb.Eval(r)
			Expect(v).To(Equal(va * vb))
		}
	})

	It("applies the product rule to the first derivative", func() {
		r := 1.4
		d, err := p.Deriv(r)
		Expect(err).NotTo(HaveOccurred())
		va, _ := pa.Eval(r)
		vb, _ := pb.Eval(r)
		da, _ := pa.Deriv(r)
		db, _ := pb.Deriv(r)
		Expect(d).To(BeNumerically("~", va*db+da*vb, tol))
	})

	It("matches a finite difference of the product value", func() {
		r, h := 1.4, 1e-6
		d, err := p.Deriv(r)
		Expect(err).NotTo(HaveOccurred())
		hi, _ := p.Eval(r + h)
		lo, _ := p.Eval(r - h)
		Expect(d).To(BeNumerically("~", (hi-lo)/(2*h), 1e-6))
	})

	It("applies the generalized product rule to the second derivative", func() {
		r := 1.2
		d, err := p.Deriv2(r)
		Expect(err).NotTo(HaveOccurred())
		va, _ := pa.Eval(r)
		vb, _ := pb.Eval(r)
		da, _ := pa.Deriv(r)
		db, _ := pb.Deriv(r)
		dda, _ := pa.Deriv2(r)
		ddb, _ := pb.Deriv2(r)
		Expect(d).To(BeNumerically("~", dda*vb+2*da*db+va*ddb, tol))
	})

	It("applies the product rule to the gradient", func() {
		dr := pot.Vector{1.0, 0.5}
		r := dr.Norm()
		g, err := p.Grad(dr)
		Expect(err).NotTo(HaveOccurred())
		va, _ := pa.Eval(r)
		vb, _ := pb.Eval(r)
		ga, _ := pa.Grad(dr)
		gb, _ := pb.Grad(dr)
		for i := range g {
			Expect(g[i]).To(BeNumerically("~", ga[i]*vb+va*gb[i], tol))
		}
	})

	It("takes the smaller cutoff", func() {
		Expect(p.Cutoff()).To(Equal(2.5))
	})
})

var _ = Describe("extended arity", func() {
	e1 := envScaled{name: "E1", k: 2, rc: 2}
	e2 := envScaled{name: "E2", k: -0.5, rc: 3}
	prod := pot.Mul(e1, e2)
	sum := pot.Add(e1, e2)
	env := pot.Env(1.5)

	It("multiplies values with the environment held fixed", func() {
		r := 1.1
		v, err := prod.EvalEnv(r, env)
		Expect(err).NotTo(HaveOccurred())
		v1, _ := e1.EvalEnv(r, env)
		v2, _ := e2.EvalEnv(r, env)
		Expect(v).To(BeNumerically("~", v1*v2, tol))
	})

	It("applies the product rule with the environment held fixed", func() {
		r := 1.1
		d, err := prod.DerivEnv(r, env)
		Expect(err).NotTo(HaveOccurred())
		v1, _ := e1.EvalEnv(r, env)
		v2, _ := e2.EvalEnv(r, env)
		d1, _ := e1.DerivEnv(r, env)
		d2, _ := e2.DerivEnv(r, env)
		Expect(d).To(BeNumerically("~", v1*d2+d1*v2, tol))
	})

	It("adds values and derivatives through Sum", func() {
		r := 0.9
		v, err := sum.EvalEnv(r, env)
		Expect(err).NotTo(HaveOccurred())
		v1, _ := e1.EvalEnv(r, env)
		v2, _ := e2.EvalEnv(r, env)
		Expect(v).To(BeNumerically("~", v1+v2, tol))

		d, err := sum.DerivEnv(r, env)
		Expect(err).NotTo(HaveOccurred())
		d1, _ := e1.DerivEnv(r, env)
		d2, _ := e2.DerivEnv(r, env)
		Expect(d).To(BeNumerically("~", d1+d2, tol))
	})

	It("reports the missing environment form of a plain leaf", func() {
		mixed := pot.Mul(e1, pa)
		_, err := mixed.EvalEnv(1.0, env)
		Expect(err).To(MatchError(pot.ErrUnsupported))
	})
})

var _ = Describe("display", func() {
	It("prints sums and products as infix expressions", func() {
		Expect(pot.Add(pa, pb).String()).To(Equal("A + B"))
		Expect(pot.Mul(pa, pb).String()).To(Equal("A * B"))
	})

	It("prints nested trees without parentheses", func() {
		Expect(pot.Mul(pot.Add(pa, pb), pc).String()).To(Equal("A + B * C"))
		Expect(pot.Add(pa, pot.Mul(pb, pc)).String()).To(Equal("A + B * C"))
	})
})
