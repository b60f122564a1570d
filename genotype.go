// Package genotype provides the decision-variable representation layer for
// evolutionary search: a closed set of variable types that know how to draw
// a random valid value and how to translate between phenotype (evaluation
// facing) and genotype (operator facing) representations
// 1. Has zero knowledge of the surrounding search loop or problem definition
// 2. Threads an explicit *rand.Rand through every sampling call
// 3. Guarantees Encode and Decode are mutual inverses over each variant's valid domain
// 4. Takes ownership of caller-supplied element collections at construction
package genotype

import (
	"math/rand/v2"
)

// --- Core Capability Contract ---

// Type describes a single decision variable. P is the phenotype
// representation consumed by evaluation code, G is the genotype
// representation consumed by variation operators. Variants with no
// distinct genotype use P == G with identity Encode/Decode.
type Type[P, G any] interface {
	// Rand draws a random valid value. Variants with a distinct genotype
	// (Integer) return the encoded form; all others return the phenotype
	Rand(rng *rand.Rand) G

	// Encode translates a phenotype into its genotype representation
	Encode(value P) (G, error)

	// Decode recovers the phenotype from a genotype representation
	Decode(encoded G) (P, error)

	// String reports the variant and its defining parameters
	String() string
}

// --- Contract Conformance ---

var (
	_ Type[float64, float64] = (*Real)(nil)
	_ Type[float64, float64] = (*RealNormal)(nil)
	_ Type[float64, float64] = (*RealT)(nil)
	_ Type[[]bool, []bool]   = (*Binary)(nil)
	_ Type[int, []bool]      = (*Integer)(nil)
	_ Type[[]int, []int]     = (*Permutation[int])(nil)
	_ Type[[]int, []int]     = (*Subset[int])(nil)
)
