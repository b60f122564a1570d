// Package operator provides variation operators that act on the
// representations produced by the genotype variants: bit-level operators
// for Binary and Integer genotypes, real-vector operators for the
// continuous variants, and order operators for permutations. Operators
// never inspect variable parameters; they see only the genotype slices.
package operator

import (
	"math/rand/v2"
)

// --- Operator Contracts ---

// Variator recombines parent genotypes into offspring. Implementations
// return one or more new genotypes and never modify the parents.
type Variator[S any] interface {
	Vary(parents []S, rng *rand.Rand) []S
}

// Mutator perturbs a genotype in place. The rate parameter controls the
// intensity of perturbation (0-1).
type Mutator[S any] interface {
	Mutate(genotype *S, rate float64, rng *rand.Rand)
}
