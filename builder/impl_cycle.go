// SPDX-License-Identifier: MIT
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings need loops or parallel links.
//   - Emits i–(i+1) for i=0..n-2, then the closing (n-1)–0.
//   - Weight of every link comes from cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) nodes + O(n) links.
//   - Space: O(1) extra.
//
// Determinism:
//   - Node order is 0..n-1; the closing link is always emitted last.
//   - Weights are fixed for a fixed cfg.rng/weightFn.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		emitRing(f, cfg, 0, n)
		return nil
	}
}

// emitRing adds vertices first..first+size-1 and closes them into a ring.
// Shared by Cycle and Wheel; size ≥ 3 is the caller's responsibility.
func emitRing(f *Fixture, cfg config, first, size int) {
	// Nodes in index order.
	for i := 0; i < size; i++ {
		f.AddNode(cfg.idFn(first + i))
	}

	// Links i–(i+1); the modulo wraps the last node back to first.
	for i := 0; i < size; i++ {
		u := cfg.idFn(first + i)
		v := cfg.idFn(first + (i+1)%size)
		f.AddLink(u, v, cfg.weightFn(cfg.rng))
	}
}
