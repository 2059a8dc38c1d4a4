// SPDX-License-Identifier: MIT

// Package centrality ranks the people of a network.Graph by structural
// position.
//
// What
//
//   - PageRank: iterative eigenvector centrality on the undirected graph,
//     every edge carrying rank both ways. Fixed iteration count by default;
//     WithTolerance opts into an early exit. Result is min-max normalized.
//   - Betweenness: Brandes' shortest-path accumulation on the unweighted
//     graph (link weights are ignored). Result is min-max normalized; graphs
//     with fewer than 3 nodes yield an empty map.
//   - Clustering: local triangle density k-neighborhood edges / (k(k-1)/2),
//     0 for degree < 2. Already bounded by [0,1], so not normalized.
//
// Degradation
//
//	None of the engines fail. An empty graph yields an empty map. Isolated
//	nodes keep an out-degree of 1 in PageRank so no division by zero occurs.
//	PageRank options are not validated: a damping outside [0,1) or zero
//	iterations is honoured as given, and keeping them sensible is the
//	caller's responsibility.
//
// Determinism
//
//	Nodes are visited in graph order and neighbors in sorted order, so the
//	floating-point summation order, and therefore every score, is
//	reproducible across runs.
//
// Complexity
//
//   - PageRank:    O(iterations · (V + E))
//   - Betweenness: O(V · (V + E)) time, O(V + E) memory
//   - Clustering:  O(Σ k²) neighbor-pair lookups
package centrality
