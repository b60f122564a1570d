package genotype

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// --- Element-Set Variants ---

// Permutation is a variable ranging over orderings of a fixed element
// set. The constructor copies the caller's slice, so mutating the
// original afterwards cannot change the domain.
type Permutation[T any] struct {
	elements []T
}

// NewPermutation creates a permutation variable over an owned copy of elements
func NewPermutation[T any](elements []T) (*Permutation[T], error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("permutation requires at least one element")
	}
	return &Permutation[T]{elements: slices.Clone(elements)}, nil
}

// Elements returns a copy of the element set
func (p *Permutation[T]) Elements() []T { return slices.Clone(p.elements) }

// Rand returns a uniformly shuffled copy of the element set
func (p *Permutation[T]) Rand(rng *rand.Rand) []T {
	perm := slices.Clone(p.elements)
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Encode is the identity
func (p *Permutation[T]) Encode(value []T) ([]T, error) { return value, nil }

// Decode is the identity
func (p *Permutation[T]) Decode(encoded []T) ([]T, error) { return encoded, nil }

func (p *Permutation[T]) String() string {
	return fmt.Sprintf("Permutation(%d)", len(p.elements))
}

// Subset is a variable ranging over fixed-size subsets of an element
// set, sampled uniformly without replacement over the full set.
type Subset[T any] struct {
	elements []T
	size     int
}

// NewSubset creates a subset variable drawing size elements from an
// owned copy of elements
func NewSubset[T any](elements []T, size int) (*Subset[T], error) {
	if size < 0 || size > len(elements) {
		return nil, fmt.Errorf("subset size %d outside [0, %d]", size, len(elements))
	}
	return &Subset[T]{elements: slices.Clone(elements), size: size}, nil
}

// Elements returns a copy of the element set
func (s *Subset[T]) Elements() []T { return slices.Clone(s.elements) }

// Size reports how many elements each draw contains
func (s *Subset[T]) Size() int { return s.size }

// Rand draws size distinct elements from the set
func (s *Subset[T]) Rand(rng *rand.Rand) []T {
	subset := make([]T, 0, s.size)
	for _, idx := range rng.Perm(len(s.elements))[:s.size] {
		subset = append(subset, s.elements[idx])
	}
	return subset
}

// Encode is the identity
func (s *Subset[T]) Encode(value []T) ([]T, error) { return value, nil }

// Decode is the identity
func (s *Subset[T]) Decode(encoded []T) ([]T, error) { return encoded, nil }

func (s *Subset[T]) String() string {
	return fmt.Sprintf("Subset(%d, %d)", len(s.elements), s.size)
}
