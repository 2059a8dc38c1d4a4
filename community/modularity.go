// SPDX-License-Identifier: MIT

package community

import "github.com/katalvlaran/constellation/network"

// aggregate holds the per-community sums that modularity is built from.
type aggregate struct {
	internal float64 // L_c: edges with both ends inside
	degree   float64 // K_c: Σ k_i
	squared  float64 // S_c: Σ k_i²
}

// term is the contribution of one community before the 1/2m factor.
func (a aggregate) term(fourM float64) float64 {
	return a.internal - (a.degree*a.degree+a.squared)/fourM
}

// Modularity scores assignment (name → community id) on g. Nodes missing
// from assignment count as singletons. Returns 0 for a graph without edges.
func Modularity(g *network.Graph, assignment map[string]int) float64 {
	m := float64(g.EdgeCount())
	if m == 0 {
		return 0
	}

	names := g.Names()
	comm := make([]int, len(names))
	for i, name := range names {
		id, ok := assignment[name]
		if !ok {
			// Negative ids cannot collide with caller ids ≥ 0.
			id = -(i + 1)
		}
		comm[i] = id
	}

	aggs := make(map[int]*aggregate)
	for i, name := range names {
		a := aggs[comm[i]]
		if a == nil {
			a = &aggregate{}
			aggs[comm[i]] = a
		}
		k := float64(g.Degree(name))
		a.degree += k
		a.squared += k * k
	}
	for _, e := range g.Edges() {
		u := g.Index(string(e.Source))
		v := g.Index(string(e.Target))
		if comm[u] == comm[v] {
			aggs[comm[u]].internal++
		}
	}

	q := 0.0
	for _, a := range aggs {
		q += a.term(4 * m)
	}
	return q / (2 * m)
}
