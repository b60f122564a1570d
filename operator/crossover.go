package operator

import (
	"math/rand/v2"
	"slices"
)

// --- Crossover Operators ---

// Uniform performs uniform crossover between two parent genotypes.
// Each position has an independent chance of being exchanged.
type Uniform[S ~[]T, T any] struct {
	// MixProbability is the chance of keeping a position from parent 1 vs parent 2
	MixProbability float64
}

// Vary creates two offspring using uniform crossover
func (u *Uniform[S, T]) Vary(parents []S, rng *rand.Rand) []S {
	if len(parents) < 2 {
		return passThrough(parents)
	}

	offspring1, offspring2 := cloneParents(parents[0], parents[1])
	for i := range offspring1 {
		if rng.Float64() >= u.MixProbability {
			offspring1[i], offspring2[i] = offspring2[i], offspring1[i]
		}
	}

	return []S{offspring1, offspring2}
}

// NPoint performs N-point crossover between two parent genotypes: the
// genotypes are cut at N random points and every second segment is
// exchanged.
type NPoint[S ~[]T, T any] struct {
	// Points is the number of crossover points
	Points int
}

// Vary creates two offspring by exchanging alternating parent segments
func (np *NPoint[S, T]) Vary(parents []S, rng *rand.Rand) []S {
	if len(parents) < 2 {
		return passThrough(parents)
	}

	offspring1, offspring2 := cloneParents(parents[0], parents[1])
	n := len(offspring1)

	cuts := make([]int, 0, np.Points+1)
	for i := 0; i < np.Points && i < n-1; i++ {
		cuts = append(cuts, rng.IntN(n-1)+1)
	}
	cuts = append(cuts, n)
	slices.Sort(cuts)

	exchange := false
	start := 0
	for _, end := range cuts {
		if exchange {
			for j := start; j < end; j++ {
				offspring1[j], offspring2[j] = offspring2[j], offspring1[j]
			}
		}
		exchange = !exchange
		start = end
	}

	return []S{offspring1, offspring2}
}

// cloneParents copies both parents truncated to their common length, so
// offspring start as parent copies and crossover only exchanges positions
func cloneParents[S ~[]T, T any](parent1, parent2 S) (S, S) {
	n := min(len(parent1), len(parent2))
	return slices.Clone(parent1[:n]), slices.Clone(parent2[:n])
}

// passThrough copies whatever parents exist when there are too few to recombine
func passThrough[S ~[]T, T any](parents []S) []S {
	out := make([]S, 0, len(parents))
	for _, p := range parents {
		out = append(out, slices.Clone(p))
	}
	return out
}
