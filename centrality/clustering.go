// SPDX-License-Identifier: MIT

package centrality

import (
	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/score"
)

// Clustering returns the local clustering coefficient of every node: the
// number of edges among its neighbors divided by k(k-1)/2, or 0 when the
// degree k is below 2. Values are not normalized.
func Clustering(g *network.Graph) score.Map {
	out := make(score.Map, g.Len())
	for _, name := range g.Names() {
		out[name] = Coefficient(g, name)
	}
	return out
}

// Coefficient returns the clustering coefficient of a single node.
func Coefficient(g *network.Graph, name string) float64 {
	nbrs := g.Neighbors(name)
	k := len(nbrs)
	if k < 2 {
		return 0
	}

	adj := g.Adjacency()
	links := 0
	for i := 0; i < k; i++ {
		set := adj[nbrs[i]]
		for j := i + 1; j < k; j++ {
			if _, ok := set[nbrs[j]]; ok {
				links++
			}
		}
	}
	return float64(links) / (float64(k*(k-1)) / 2)
}
