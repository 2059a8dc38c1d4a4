// SPDX-License-Identifier: MIT
//
// pagerank.go - power-iteration PageRank over the undirected graph.
//
// Complexity:
//   - Time: O(Iterations·(V + E)).
//   - Space: O(V + E) for two rank buffers and the index-based neighbor lists.
//
// Determinism:
//   - Synchronous updates from the previous round only; no randomness.

package centrality

import (
	"math"

	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/score"
)

// PageRank returns min-max normalized PageRank scores for every node of g.
func PageRank(g *network.Graph, opts ...PageRankOption) score.Map {
	return score.Normalize(RawPageRank(g, opts...))
}

// RawPageRank returns the un-normalized ranks.
//
// Implementation:
//   - Stage 1: rank(v) = 1/N for all v; outdeg(v) = max(degree(v), 1).
//   - Stage 2: each round computes, from the previous round only,
//     rank'(v) = (1-d)/N + d · Σ_{u ∈ adj(v)} rank(u)/outdeg(u).
//   - Stage 3: stop after Iterations rounds, or earlier when Tolerance > 0
//     and max |rank' - rank| < Tolerance.
//
// Isolated nodes leak their damped mass (they have no neighbor to pass it
// to), so ranks need not sum to 1; only their order matters after
// normalization.
func RawPageRank(g *network.Graph, opts ...PageRankOption) score.Map {
	o := DefaultPageRankOptions()
	for _, opt := range opts {
		opt(&o)
	}

	names := g.Names()
	n := len(names)
	if n == 0 {
		return score.Map{}
	}

	nf := float64(n)
	rank := make([]float64, n)
	outDeg := make([]float64, n)
	for i, name := range names {
		rank[i] = 1 / nf
		outDeg[i] = math.Max(float64(g.Degree(name)), 1)
	}

	// Neighbor indices once, so rounds run on slices.
	nbrs := make([][]int, n)
	for i, name := range names {
		list := g.Neighbors(name)
		nbrs[i] = make([]int, len(list))
		for j, nb := range list {
			nbrs[i][j] = g.Index(nb)
		}
	}

	teleport := (1 - o.Damping) / nf
	next := make([]float64, n)
	for iter := 0; iter < o.Iterations; iter++ {
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, u := range nbrs[v] {
				sum += rank[u] / outDeg[u]
			}
			next[v] = teleport + o.Damping*sum
		}

		maxDelta := 0.0
		for v := 0; v < n; v++ {
			if d := math.Abs(next[v] - rank[v]); d > maxDelta {
				maxDelta = d
			}
		}
		rank, next = next, rank

		if o.Tolerance > 0 && maxDelta < o.Tolerance {
			break
		}
	}

	out := make(score.Map, n)
	for i, name := range names {
		out[name] = rank[i]
	}
	return out
}
