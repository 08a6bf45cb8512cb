package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-gmath/scalar"
)

// DeterministicValues returns n values uniformly distributed in
// [-amplitude, amplitude) from a fixed seed, for reproducible property tests.
func DeterministicValues(seed int64, amplitude float64, n int) []scalar.Float {
	out := make([]scalar.Float, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = scalar.Float((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}
