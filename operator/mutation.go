package operator

import (
	"math/rand/v2"

	"github.com/lixenwraith/genotype"
)

// --- Mutation Operators ---

// BitFlip flips bits in a bit-string genotype. On Gray-coded Integer
// genotypes a single flip moves the decoded value by a small step,
// keeping mutation local in the native integer space.
type BitFlip struct{}

// Mutate flips each bit independently with probability rate
func (bf *BitFlip) Mutate(bits *[]bool, rate float64, rng *rand.Rand) {
	if bits == nil {
		return
	}
	for i := range *bits {
		if rng.Float64() < rate {
			(*bits)[i] = !(*bits)[i]
		}
	}
}

// Gaussian adds Gaussian noise to real-vector genotypes. Each position
// is bounded by the Real variable it was drawn from, and noise scales
// with that variable's range so one StandardDeviation setting behaves
// consistently across differently-scaled variables. Positions beyond
// the variable list pass through untouched.
type Gaussian struct {
	Variables         []*genotype.Real
	StandardDeviation float64
}

// Mutate perturbs each bounded position with probability rate, clamping
// the result back into its variable's interval (min bound first)
func (g *Gaussian) Mutate(vec *[]float64, rate float64, rng *rand.Rand) {
	if vec == nil {
		return
	}

	n := min(len(*vec), len(g.Variables))
	for i := 0; i < n; i++ {
		if rng.Float64() >= rate {
			continue
		}

		v := g.Variables[i]
		value := (*vec)[i] + rng.NormFloat64()*g.StandardDeviation*(v.Max-v.Min)
		if value < v.Min {
			value = v.Min
		}
		if value > v.Max {
			value = v.Max
		}
		(*vec)[i] = value
	}
}

// Swap exchanges two distinct random positions of an order-based
// genotype, preserving the element multiset.
type Swap[S ~[]T, T any] struct{}

// Mutate swaps one random pair with probability rate
func (sw *Swap[S, T]) Mutate(perm *S, rate float64, rng *rand.Rand) {
	if perm == nil || len(*perm) < 2 {
		return
	}
	if rng.Float64() >= rate {
		return
	}

	i := rng.IntN(len(*perm))
	j := rng.IntN(len(*perm) - 1)
	if j >= i {
		j++
	}
	(*perm)[i], (*perm)[j] = (*perm)[j], (*perm)[i]
}
