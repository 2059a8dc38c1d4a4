// SPDX-License-Identifier: MIT
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices 0..n-1 via cfg.idFn, then links (i-1)–i for i=1..n-1.
//   - Weight of every link comes from cfg.weightFn(cfg.rng).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) links.
//   - Space: O(1) extra.
//
// Determinism:
//   - Node order is 0..n-1; link order follows increasing i.
//   - Weights are fixed for a fixed cfg.rng/weightFn.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(f *Fixture, cfg config) error {
		// Validate before emitting anything, so a failure leaves f untouched.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Register all nodes first so isolated prefixes keep their position.
		for i := 0; i < n; i++ {
			f.AddNode(cfg.idFn(i))
		}

		// Chain consecutive nodes.
		for i := 1; i < n; i++ {
			f.AddLink(cfg.idFn(i-1), cfg.idFn(i), cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
