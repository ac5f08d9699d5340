// Package models provides closed-form leaf potentials for the composition
// algebra in package pot:
//
//   - [LennardJones]: 12-6 van der Waals pair potential
//   - [Morse]: anharmonic bond potential
//   - [Harmonic]: spring bond potential
//   - [CosineTaper]: smooth switching envelope, multiplied onto other
//     potentials to bring them to zero at the cutoff
//   - [BondOrder]: coordination-dependent attraction using the extended
//     (distance, environment) arity
//
// All models implement the full capability set (value, first and second
// derivative, gradient, cutoff); BondOrder additionally implements
// pot.EnvPotential.
package models
