package genotype

// --- Bit And Gray-Code Conversions ---

// IntToBits returns the width-length bit sequence representing value,
// most significant bit first. The caller must ensure value fits in
// width bits; Integer guarantees this through its width derivation.
func IntToBits(value uint64, width int) []bool {
	bits := make([]bool, width)
	for i := width - 1; i >= 0; i-- {
		bits[i] = value&1 == 1
		value >>= 1
	}
	return bits
}

// BitsToInt returns the integer encoded by bits, most significant bit
// first. Total over any bit sequence.
func BitsToInt(bits []bool) uint64 {
	var value uint64
	for _, b := range bits {
		value <<= 1
		if b {
			value |= 1
		}
	}
	return value
}

// BinaryToGray converts a plain binary sequence to its reflected-binary
// (Gray) form: the leading bit carries over, every later bit is XORed
// with its predecessor. Bijective at every length.
func BinaryToGray(bits []bool) []bool {
	gray := make([]bool, len(bits))
	if len(bits) == 0 {
		return gray
	}
	gray[0] = bits[0]
	for i := 1; i < len(bits); i++ {
		gray[i] = bits[i] != bits[i-1]
	}
	return gray
}

// GrayToBinary inverts BinaryToGray with a running prefix XOR over the
// Gray-coded sequence.
func GrayToBinary(gray []bool) []bool {
	bits := make([]bool, len(gray))
	acc := false
	for i, g := range gray {
		acc = acc != g
		bits[i] = acc
	}
	return bits
}
