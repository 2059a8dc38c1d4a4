// SPDX-License-Identifier: MIT

package relation

import (
	"errors"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/network"
)

// Unreachable is the hop count of two people with no connecting path.
const Unreachable = -1

// errReached stops the search once the target is dequeued.
var errReached = errors.New("relation: target reached")

// shortestPath returns a hop-shortest path a..b in g, or nil when b cannot
// be reached within maxHops (0 = unlimited). With skipDirect the a–b link
// itself is not walked, which yields the best detour between the two.
func shortestPath(g *network.Graph, a, b string, maxHops int, skipDirect bool) []string {
	if !g.Has(a) || !g.Has(b) {
		return nil
	}

	opts := []bfs.Option{
		bfs.WithMaxDepth(maxHops),
		bfs.WithOnVisit(func(name string, _ int) error {
			if name == b {
				return errReached
			}
			return nil
		}),
	}
	if skipDirect {
		opts = append(opts, bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return network.PairKey(curr, nbr) != network.PairKey(a, b)
		}))
	}

	res, err := bfs.BFS(g, a, opts...)
	if err != nil && !errors.Is(err, errReached) {
		return nil
	}
	path, err := res.PathTo(b)
	if err != nil {
		return nil
	}
	return path
}

// hops is len(path)-1, or Unreachable for a nil path.
func hops(path []string) int {
	if path == nil {
		return Unreachable
	}
	return len(path) - 1
}
