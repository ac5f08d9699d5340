// Package pot provides the composition algebra for interatomic potentials.
//
// A potential is a pure function of a pair separation (plus derivatives,
// gradient and cutoff radius). The package defines the capability set every
// potential implements, a uniform call protocol dispatching on an evaluation
// [Mode], and two composites that build new potentials out of existing ones:
//
//   - [Sum] (via [Add]): combines two potentials additively, cutoff = max
//   - [Product] (via [Mul]): combines multiplicatively with the product
//     rule for derivatives, cutoff = min
//
// # Example
//
//	lj := models.NewLennardJones()
//	sw := models.NewCosineTaper()
//	p := pot.Mul(lj, sw)
//	v, _ := pot.Eval(p, 1.2)
//
// Composites evaluate the expression tree exactly as constructed: no
// flattening, constant folding or algebraic simplification is performed.
// Display follows the same rule, so nested trees print as an infix
// expression without parentheses ("a + b * c" for Mul(Add(a, b), c)).
//
// # Capabilities
//
// The core [Potential] interface covers value, first derivative, cutoff and
// display. Second derivatives, gradients and the extended (distance,
// environment) arity are optional interfaces ([SecondDeriver], [Gradienter],
// [EnvPotential]). Requesting a capability a concrete type does not
// implement returns an [UnsupportedError]; it never silently yields zero.
//
// # Thread Safety
//
// Potentials are immutable after construction, so a composition tree may be
// evaluated concurrently from any number of goroutines without
// synchronization.
package pot
