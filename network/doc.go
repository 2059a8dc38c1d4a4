// SPDX-License-Identifier: MIT

// Package network is the boundary of the constellation engine: it turns the
// caller's node and link lists into one canonical, read-only Graph that every
// analytics package (centrality, community, relation, health, gravity,
// evolution) consumes by reference.
//
// What
//
//   - Node and Link records whose endpoints decode from either a bare JSON
//     string ("Alice") or a record ({"name":"Alice"}); both collapse into a
//     plain name at the boundary so no algorithm ever branches on shape.
//   - Build(nodes, links) produces a Graph: ordered node names, a symmetric
//     Adjacency (name → neighbor set), sorted neighbor lists and the
//     deduplicated undirected edge list with weights.
//   - PairKey(a, b) joins two names in lexicographic order with "|" so (A,B)
//     and (B,A) address one entry in every pairwise map.
//   - Person metadata (first/last year, mentions, category) indexed by name
//     through People, with neutral defaults when a record is absent.
//
// Pruning policy
//
//	Build never fails. Links with an empty endpoint, an endpoint absent from
//	the node set, or equal endpoints (self-loops) are dropped silently.
//	Duplicate node names keep their first position. Parallel links between
//	the same pair keep the first link's weight.
//
// Determinism
//
//	Node order is input order; Neighbors returns names sorted ascending, so
//	every traversal driven from a Graph is reproducible.
//
// Complexity
//
//   - Build: O(V + E log d) where d is the maximum degree (neighbor sort).
//   - Neighbors, Degree, HasEdge: O(1) lookups.
package network
