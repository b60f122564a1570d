package genotype

import (
	"math/rand/v2"
)

// NewRand returns a PCG-backed generator for sampling calls. Seed 0
// selects a nondeterministic seed; any other value gives a reproducible
// stream. Generators are not safe for concurrent use; give each worker
// its own.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
