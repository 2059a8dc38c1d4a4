// SPDX-License-Identifier: MIT

// Package health summarizes a whole network.Graph in one Snapshot: how
// connected it is, how star-like, and how much of it is still active.
//
// What
//
//   - Structure: average degree, density, average clustering coefficient,
//     size of the giant (largest connected) component, degree
//     centralization.
//   - Reachability: average shortest-path length estimated from a sample of
//     BFS sources drawn with replacement. Only finite distances count.
//   - Activity: share of people last seen within 3 years of the current
//     year, and share last seen more than 5 years before it. People without
//     a known last year are in neither group.
//
// Degenerate graphs
//
//	An empty graph yields the zero Snapshot. Density and path length are 0
//	for a single node; centralization is 0 for up to two nodes, where its
//	(N−1)(N−2) denominator vanishes.
//
// Randomness
//
//	Sampling uses a per-call *rand.Rand. Seed 0 selects a fixed default seed,
//	so repeated calls with the same inputs return the same Snapshot.
//	WithRand hands in a caller-owned source; *rand.Rand is not safe for
//	concurrent use, so do not share one across goroutines.
package health
