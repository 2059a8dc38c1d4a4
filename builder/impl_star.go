// SPDX-License-Identifier: MIT
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub has the fixed name CenterName; leaves use cfg.idFn(1..n-1).
//   - Spokes are emitted Center–leaf[i] in increasing i.
//   - Weight of every spoke comes from cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) links.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed hub name; leaves follow increasing index.
//   - Weights are fixed for a fixed cfg.rng/weightFn.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(f *Fixture, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		// Hub first so it leads the node list.
		f.AddNode(CenterName)

		// AddLink registers each leaf on first sight.
		for i := 1; i < n; i++ {
			f.AddLink(CenterName, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
