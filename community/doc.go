// SPDX-License-Identifier: MIT

// Package community partitions a network.Graph into densely connected
// groups by greedy modularity optimization, a simplified single-level
// Louvain, and assigns each group a display color.
//
// Algorithm
//
//  1. Every node starts alone in community id = its node index.
//  2. A pass visits nodes in graph order. For each node it evaluates moving
//     into every distinct community among its neighbors and applies the move
//     with the largest strictly positive modularity gain.
//  3. Passes repeat until one produces no move.
//
// Modularity
//
//	Q = (1/2m) Σ_{i≤j, same community} (A_ij − k_i·k_j/2m), A_ii = 0
//
// Each unordered pair is taken once and the diagonal contributes only its
// expected term. Per community c this collapses to
// L_c − (K_c² + S_c)/4m, with L_c the internal edges, K_c the degree sum and
// S_c the sum of squared degrees, so a candidate move is priced in O(deg).
// A graph without edges has Q = 0.
//
// Determinism and order
//
//	The result depends on visit order: a different node order can settle in a
//	different partition of comparable quality. Graph order is the fixed
//	order used here. Gains below minGain are treated as zero so float noise
//	cannot trigger a move, which bounds the number of passes.
//
// Complexity
//
//	O(passes · (V + E)) after the per-community aggregates are built. The
//	detector targets graphs of hundreds to a few thousand nodes.
package community
