package genotype

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// --- Continuous Variants ---

// Real is a continuous variable sampled uniformly over [Min, Max].
// Its phenotype and genotype coincide: real-valued operators act on the
// float directly.
type Real struct {
	Min, Max float64
}

// NewReal creates a uniform continuous variable with inclusive bounds
func NewReal(min, max float64) (*Real, error) {
	if min > max {
		return nil, fmt.Errorf("real bounds inverted: min %v > max %v", min, max)
	}
	return &Real{Min: min, Max: max}, nil
}

// Rand draws a uniform value in [Min, Max]
func (r *Real) Rand(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Encode is the identity
func (r *Real) Encode(value float64) (float64, error) { return value, nil }

// Decode is the identity
func (r *Real) Decode(encoded float64) (float64, error) { return encoded, nil }

func (r *Real) String() string {
	return fmt.Sprintf("Real(%g, %g)", r.Min, r.Max)
}

// RealNormal is a continuous variable perturbed around a default value
// with Gaussian noise of standard deviation Spread, clamped into
// [Min, Max]. A non-positive Spread, or Frozen, pins every draw at
// Default, which keeps the variable structurally present while making
// it constant at evaluation time.
type RealNormal struct {
	Min, Max float64
	Default  float64
	Spread   float64
	Frozen   bool
}

// NewRealNormal creates a Gaussian-perturbed variable centered on def
func NewRealNormal(min, max, def, spread float64) (*RealNormal, error) {
	if min > max {
		return nil, fmt.Errorf("real bounds inverted: min %v > max %v", min, max)
	}
	return &RealNormal{Min: min, Max: max, Default: def, Spread: spread}, nil
}

// Rand draws Normal(Default, Spread) clamped into bounds, or exactly
// Default when noise is off
func (r *RealNormal) Rand(rng *rand.Rand) float64 {
	if r.Spread <= 0 || r.Frozen {
		return r.Default
	}
	return clamp(r.Default+rng.NormFloat64()*r.Spread, r.Min, r.Max)
}

// Encode is the identity
func (r *RealNormal) Encode(value float64) (float64, error) { return value, nil }

// Decode is the identity
func (r *RealNormal) Decode(encoded float64) (float64, error) { return encoded, nil }

func (r *RealNormal) String() string {
	return fmt.Sprintf("RealNormal(%g, %g, %g, %g)", r.Min, r.Max, r.Default, r.Spread)
}

// RealT is a continuous variable perturbed around a default value with
// heavy-tailed Student's-t noise (5 degrees of freedom), clamped into
// [Min, Max]. The heavy tails give occasional large jumps that uniform
// or Gaussian sampling would almost never produce.
type RealT struct {
	Min, Max float64
	Default  float64
}

// NewRealT creates a t-perturbed variable centered on def
func NewRealT(min, max, def float64) (*RealT, error) {
	if min > max {
		return nil, fmt.Errorf("real bounds inverted: min %v > max %v", min, max)
	}
	return &RealT{Min: min, Max: max, Default: def}, nil
}

const studentTDegrees = 5

// Rand draws Default plus Student's-t noise, clamped into bounds
func (r *RealT) Rand(rng *rand.Rand) float64 {
	return clamp(r.Default+studentT(rng, studentTDegrees), r.Min, r.Max)
}

// Encode is the identity
func (r *RealT) Encode(value float64) (float64, error) { return value, nil }

// Decode is the identity
func (r *RealT) Decode(encoded float64) (float64, error) { return encoded, nil }

func (r *RealT) String() string {
	return fmt.Sprintf("RealT(%g, %g, %g)", r.Min, r.Max, r.Default)
}

// studentT samples a Student's-t distribution with df degrees of
// freedom as a standard normal over the square root of a scaled
// chi-square draw.
func studentT(rng *rand.Rand, df int) float64 {
	var chiSq float64
	for i := 0; i < df; i++ {
		z := rng.NormFloat64()
		chiSq += z * z
	}
	return rng.NormFloat64() / math.Sqrt(chiSq/float64(df))
}

// clamp applies the min bound before the max bound
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
