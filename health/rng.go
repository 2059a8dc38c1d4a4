// SPDX-License-Identifier: MIT
//
// rng.go - deterministic random source for path-length sampling.

package health

import "math/rand"

// defaultRNGSeed is used when the caller passes seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to
// defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// sampleIndices draws k indices from [0, n) with replacement.
func sampleIndices(rng *rand.Rand, n, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = rng.Intn(n)
	}
	return out
}
