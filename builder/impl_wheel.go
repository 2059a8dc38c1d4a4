// SPDX-License-Identifier: MIT
//
// impl_wheel.go - implementation of Wheel(n).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Hub has the fixed name CenterName and is registered first.
//   - Ring of n-1 vertices cfg.idFn(1..n-1), then spokes CenterName–ring[i].
//   - Total links: 2(n-1).
//
// Complexity:
//   - Time: O(n) nodes + O(2n-2) links.
//   - Space: O(1) extra.
//
// Determinism:
//   - Ring links come before spokes; spokes follow increasing i.
//   - Weights are fixed for a fixed cfg.rng/weightFn.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(f *Fixture, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		// Hub first so it leads the node list.
		f.AddNode(CenterName)

		// Rim uses indices 1..n-1, matching Star's leaf numbering.
		emitRing(f, cfg, 1, n-1)

		// Spokes.
		for i := 1; i < n; i++ {
			f.AddLink(CenterName, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
