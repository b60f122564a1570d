package genotype

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// --- Bit-String Variants ---

// Binary is a fixed-length bit-string variable. Its phenotype and
// genotype coincide: the bit sequence is already the form bit-level
// operators act on.
type Binary struct {
	NBits int
}

// NewBinary creates a bit-string variable of the given width
func NewBinary(nbits int) (*Binary, error) {
	if nbits <= 0 {
		return nil, fmt.Errorf("binary width must be positive, got %d", nbits)
	}
	return &Binary{NBits: nbits}, nil
}

// Rand draws NBits independent fair-coin bits
func (b *Binary) Rand(rng *rand.Rand) []bool {
	seq := make([]bool, b.NBits)
	for i := range seq {
		seq[i] = rng.IntN(2) == 1
	}
	return seq
}

// Encode is the identity
func (b *Binary) Encode(value []bool) ([]bool, error) { return value, nil }

// Decode is the identity
func (b *Binary) Decode(encoded []bool) ([]bool, error) { return encoded, nil }

func (b *Binary) String() string {
	return fmt.Sprintf("Binary(%d)", b.NBits)
}

// Integer is a bounded integer variable whose genotype is a Gray-coded
// bit sequence of the minimum width covering every offset in
// [0, Max-Min]. Gray coding makes consecutive integers differ in one
// bit, so single-bit-flip mutation moves the decoded value by a small
// step instead of an arbitrary one.
type Integer struct {
	Min, Max int
	nbits    int
}

// NewInteger creates a bounded integer variable; min must be below max
func NewInteger(min, max int) (*Integer, error) {
	if min >= max {
		return nil, fmt.Errorf("integer bounds invalid: min %d must be below max %d", min, max)
	}
	return &Integer{Min: min, Max: max, nbits: bits.Len64(uint64(max - min))}, nil
}

// NBits reports the genotype width
func (n *Integer) NBits() int { return n.nbits }

// Rand draws a uniform integer in [Min, Max] and returns its genotype.
// The offset is in [0, Max-Min] by construction, so it always fits the
// derived width and encoding cannot fail.
func (n *Integer) Rand(rng *rand.Rand) []bool {
	offset := uint64(rng.IntN(n.Max - n.Min + 1))
	return BinaryToGray(IntToBits(offset, n.nbits))
}

// Encode Gray-codes the offset of value above Min into an NBits-wide
// sequence. Values outside [Min, Max] are rejected, never wrapped.
func (n *Integer) Encode(value int) ([]bool, error) {
	if value < n.Min || value > n.Max {
		return nil, fmt.Errorf("integer value %d outside [%d, %d]", value, n.Min, n.Max)
	}
	return BinaryToGray(IntToBits(uint64(value-n.Min), n.nbits)), nil
}

// Decode recovers the integer from a Gray-coded genotype. The bit width
// can represent more offsets than the range holds; surplus offsets wrap
// back into range by subtracting the range span, so every sequence of
// the right width decodes to a valid value.
func (n *Integer) Decode(encoded []bool) (int, error) {
	if len(encoded) != n.nbits {
		return 0, fmt.Errorf("integer genotype width %d, expected %d", len(encoded), n.nbits)
	}
	offset := int(BitsToInt(GrayToBinary(encoded)))
	if span := n.Max - n.Min; offset > span {
		offset -= span
	}
	return n.Min + offset, nil
}

func (n *Integer) String() string {
	return fmt.Sprintf("Integer(%d, %d)", n.Min, n.Max)
}
