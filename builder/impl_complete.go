// SPDX-License-Identifier: MIT
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated node.
//   - Emits every unordered pair i<j in lexicographic (i, j) order.
//   - Total links: n(n-1)/2.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) links.
//   - Space: O(1) extra.
//
// Determinism:
//   - Link order is fixed by the (i, j) double loop.
//   - Weights are fixed for a fixed cfg.rng/weightFn.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(f *Fixture, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			f.AddNode(cfg.idFn(i))
		}

		// Upper triangle only; links are undirected.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f.AddLink(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
			}
		}
		return nil
	}
}
