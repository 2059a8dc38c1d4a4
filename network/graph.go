// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: AdjacencyBuilder. Build turns node/link lists into a Graph.
//
// Determinism:
//   - Names() preserves first-seen input order.
//   - Neighbors() is sorted ascending.
//
// Concurrency:
//   - A Graph is immutable after Build and safe for concurrent readers.

package network

import "sort"

// Adjacency maps a node name to the set of its neighbor names. It is
// symmetric: b ∈ adj[a] ⇔ a ∈ adj[b].
type Adjacency map[string]map[string]struct{}

// Graph is the canonical undirected graph shared by all engines.
type Graph struct {
	names     []string
	index     map[string]int
	adj       Adjacency
	neighbors map[string][]string
	edges     []Link
	weights   map[string]float64
}

// Build constructs a Graph from nodes and links.
//
// Implementation:
//   - Stage 1: Register node names in input order, skipping empty names and
//     duplicates. Every registered node gets an (initially empty) neighbor set.
//   - Stage 2: For each link, resolve endpoints; drop it if an endpoint is
//     empty or unknown, or if it is a self-loop. Insert both directions.
//     The first link of each unordered pair is kept in Edges with its
//     effective weight.
//   - Stage 3: Materialize sorted neighbor lists.
//
// Build never fails; malformed input degrades to a smaller graph.
//
// Complexity: O(V + E log d).
func Build(nodes []Node, links []Link) *Graph {
	g := &Graph{
		names:     make([]string, 0, len(nodes)),
		index:     make(map[string]int, len(nodes)),
		adj:       make(Adjacency, len(nodes)),
		neighbors: make(map[string][]string, len(nodes)),
		weights:   make(map[string]float64, len(links)),
	}

	for _, n := range nodes {
		if n.Name == "" {
			continue
		}
		if _, seen := g.index[n.Name]; seen {
			continue
		}
		g.index[n.Name] = len(g.names)
		g.names = append(g.names, n.Name)
		g.adj[n.Name] = make(map[string]struct{})
	}

	for _, l := range links {
		src, dst := string(l.Source), string(l.Target)
		if src == "" || dst == "" || src == dst {
			continue
		}
		if !g.Has(src) || !g.Has(dst) {
			continue
		}
		g.adj[src][dst] = struct{}{}
		g.adj[dst][src] = struct{}{}

		key := PairKey(src, dst)
		if _, dup := g.weights[key]; dup {
			continue
		}
		w := l.EffectiveWeight()
		g.weights[key] = w
		g.edges = append(g.edges, Link{Source: Endpoint(src), Target: Endpoint(dst), Weight: w})
	}

	for _, name := range g.names {
		set := g.adj[name]
		list := make([]string, 0, len(set))
		for nb := range set {
			list = append(list, nb)
		}
		sort.Strings(list)
		g.neighbors[name] = list
	}

	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.names) }

// Names returns node names in input order. The slice is a copy.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Index returns the position of name in Names, or -1.
func (g *Graph) Index(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	return -1
}

// Has reports whether name is a node of g.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Adjacency exposes the neighbor sets. Callers must not mutate it.
func (g *Graph) Adjacency() Adjacency { return g.adj }

// Neighbors returns the sorted neighbor names of name (nil if unknown).
// Callers must not mutate the returned slice.
func (g *Graph) Neighbors(name string) []string { return g.neighbors[name] }

// Degree returns the number of distinct neighbors of name.
func (g *Graph) Degree(name string) int { return len(g.adj[name]) }

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Weight returns the weight of the a–b edge and whether it exists.
func (g *Graph) Weight(a, b string) (float64, bool) {
	w, ok := g.weights[PairKey(a, b)]
	return w, ok
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns the deduplicated edges in first-seen order, each carrying
// its effective weight. The slice is a copy.
func (g *Graph) Edges() []Link {
	out := make([]Link, len(g.edges))
	copy(out, g.edges)
	return out
}

// Mutual returns the sorted common neighbors of a and b, excluding a and b.
func (g *Graph) Mutual(a, b string) []string {
	var out []string
	other := g.adj[b]
	for _, nb := range g.neighbors[a] {
		if nb == a || nb == b {
			continue
		}
		if _, ok := other[nb]; ok {
			out = append(out, nb)
		}
	}
	return out
}
