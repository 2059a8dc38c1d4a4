// SPDX-License-Identifier: MIT

package health

import (
	"sort"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/network"
)

// Components returns the connected components of g, largest first. Equal
// sizes keep the order in which their first node appears in g; members are
// listed in BFS discovery order.
//
// Time: O(V + E). Memory: O(V).
func Components(g *network.Graph) [][]string {
	names := g.Names()
	seen := make([]bool, len(names))
	mark := bfs.WithOnEnqueue(func(name string, _ int) { seen[g.Index(name)] = true })
	var comps [][]string

	for i, start := range names {
		if seen[i] {
			continue
		}
		res, err := bfs.BFS(g, start, mark)
		if err != nil {
			return nil
		}
		comps = append(comps, res.Order)
	}

	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })
	return comps
}

// GiantComponentSize returns the node count of the largest component.
func GiantComponentSize(g *network.Graph) int {
	comps := Components(g)
	if len(comps) == 0 {
		return 0
	}
	return len(comps[0])
}
