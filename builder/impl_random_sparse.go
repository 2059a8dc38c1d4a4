// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic and runs without one.
//   - One Bernoulli trial per unordered pair i<j, in (i, j) order.
//   - All n nodes are registered even when they end up isolated.
//
// Complexity:
//   - Time: O(n²) trials; expected O(p·n²/2) links.
//   - Space: O(1) extra.
//
// Determinism:
//   - Trials and weight draws share cfg.rng in a fixed order, so the link
//     set and its weights are a pure function of the seed.
//   - p = 0 and p = 1 consume no randomness for the topology.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(f *Fixture, cfg config) error {
		// Parameter domain first, then the RNG requirement.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			f.AddNode(cfg.idFn(i))
		}
		if p == 0 {
			return nil
		}

		// One trial per pair; p == 1 short-circuits the draw.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				f.AddLink(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
			}
		}
		return nil
	}
}
