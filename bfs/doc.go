// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a network.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Connected components and sampled average path length (health).
//   - Shortest path and detour length between two people (relation).
//
// Determinism
//
//	network.Graph.Neighbors is sorted, and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Alice", bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation or a hook error
//	}
//	hops := res.Depth["Bob"]
package bfs
