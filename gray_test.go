package genotype

import (
	"testing"
)

func TestIntToBitsKnownValues(t *testing.T) {
	cases := []struct {
		value uint64
		width int
		want  []bool
	}{
		{0, 3, []bool{false, false, false}},
		{1, 3, []bool{false, false, true}},
		{5, 3, []bool{true, false, true}},
		{7, 3, []bool{true, true, true}},
		{4, 4, []bool{false, true, false, false}},
	}

	for _, tc := range cases {
		got := IntToBits(tc.value, tc.width)
		if len(got) != tc.width {
			t.Fatalf("IntToBits(%d, %d) length %d", tc.value, tc.width, len(got))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("IntToBits(%d, %d) = %v, want %v", tc.value, tc.width, got, tc.want)
				break
			}
		}
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for width := 1; width <= 8; width++ {
		for value := uint64(0); value < 1<<width; value++ {
			if got := BitsToInt(IntToBits(value, width)); got != value {
				t.Errorf("width %d: BitsToInt(IntToBits(%d)) = %d", width, value, got)
			}
		}
	}
}

func TestGrayBijection(t *testing.T) {
	for width := 1; width <= 8; width++ {
		seen := make(map[uint64]bool)
		for value := uint64(0); value < 1<<width; value++ {
			bits := IntToBits(value, width)
			gray := BinaryToGray(bits)

			back := GrayToBinary(gray)
			for i := range bits {
				if back[i] != bits[i] {
					t.Fatalf("width %d value %d: GrayToBinary(BinaryToGray) mismatch at bit %d", width, value, i)
				}
			}

			// Distinct inputs must map to distinct Gray images
			image := BitsToInt(gray)
			if seen[image] {
				t.Fatalf("width %d: Gray image %d produced twice", width, image)
			}
			seen[image] = true
		}
	}
}

func TestGrayAdjacency(t *testing.T) {
	const width = 6
	for value := uint64(0); value < 1<<width-1; value++ {
		a := BinaryToGray(IntToBits(value, width))
		b := BinaryToGray(IntToBits(value+1, width))

		diff := 0
		for i := range a {
			if a[i] != b[i] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("Gray codes for %d and %d differ in %d bits, want 1", value, value+1, diff)
		}
	}
}

func TestGrayEmptySequence(t *testing.T) {
	if got := BinaryToGray(nil); len(got) != 0 {
		t.Errorf("BinaryToGray(nil) length %d", len(got))
	}
	if got := GrayToBinary(nil); len(got) != 0 {
		t.Errorf("GrayToBinary(nil) length %d", len(got))
	}
	if got := BitsToInt(nil); got != 0 {
		t.Errorf("BitsToInt(nil) = %d", got)
	}
}
