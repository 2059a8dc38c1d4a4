// SPDX-License-Identifier: MIT
//
// betweenness.go - Brandes betweenness on the unweighted graph.
//
// Complexity:
//   - Time: O(V·(V + E)); one BFS plus one back-propagation per source.
//   - Space: O(V + E); buffers are allocated once and reset per source.
//
// Determinism:
//   - Sources run in graph order over sorted neighbor lists, so float
//     accumulation order (and thus every bit of the result) is fixed.

package centrality

import (
	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/score"
)

// minBetweennessNodes is the smallest graph with a possible interior node.
const minBetweennessNodes = 3

// Betweenness returns min-max normalized betweenness centrality using
// Brandes' algorithm on the unweighted graph. Graphs with fewer than three
// nodes return an empty map.
func Betweenness(g *network.Graph) score.Map {
	raw := RawBetweenness(g)
	if len(raw) == 0 {
		return raw
	}
	return score.Normalize(raw)
}

// RawBetweenness returns the accumulated dependencies before normalization.
// On an undirected graph every unordered pair is counted from both ends,
// so values are twice the textbook pair count.
func RawBetweenness(g *network.Graph) score.Map {
	names := g.Names()
	n := len(names)
	if n < minBetweennessNodes {
		return score.Map{}
	}

	nbrs := make([][]int, n)
	for i, name := range names {
		list := g.Neighbors(name)
		nbrs[i] = make([]int, len(list))
		for j, nb := range list {
			nbrs[i][j] = g.Index(nb)
		}
	}

	cb := make([]float64, n)
	st := newBrandesState(n)
	for s := 0; s < n; s++ {
		st.search(s, nbrs)
		st.accumulate(s, cb)
	}

	out := make(score.Map, n)
	for i, name := range names {
		out[name] = cb[i]
	}
	return out
}

// brandesState holds the per-source buffers, reused across sources.
type brandesState struct {
	dist  []int
	sigma []float64
	delta []float64
	pred  [][]int
	order []int
	queue []int
}

func newBrandesState(n int) *brandesState {
	return &brandesState{
		dist:  make([]int, n),
		sigma: make([]float64, n),
		delta: make([]float64, n),
		pred:  make([][]int, n),
		order: make([]int, 0, n),
		queue: make([]int, 0, n),
	}
}

// search is the BFS phase from s: distances, shortest-path counts (sigma),
// predecessor lists and the visit order used for back-propagation.
func (st *brandesState) search(s int, nbrs [][]int) {
	for i := range st.dist {
		st.dist[i] = -1
		st.sigma[i] = 0
		st.delta[i] = 0
		st.pred[i] = st.pred[i][:0]
	}
	st.order = st.order[:0]
	st.queue = append(st.queue[:0], s)
	st.dist[s] = 0
	st.sigma[s] = 1

	for head := 0; head < len(st.queue); head++ {
		u := st.queue[head]
		st.order = append(st.order, u)
		for _, v := range nbrs[u] {
			if st.dist[v] < 0 {
				st.dist[v] = st.dist[u] + 1
				st.queue = append(st.queue, v)
			}
			if st.dist[v] == st.dist[u]+1 {
				st.sigma[v] += st.sigma[u]
				st.pred[v] = append(st.pred[v], u)
			}
		}
	}
}

// accumulate walks the visit order backwards, pushing dependency onto
// predecessors. The source never credits itself.
func (st *brandesState) accumulate(s int, cb []float64) {
	for i := len(st.order) - 1; i >= 0; i-- {
		w := st.order[i]
		for _, v := range st.pred[w] {
			st.delta[v] += st.sigma[v] / st.sigma[w] * (1 + st.delta[w])
		}
		if w != s {
			cb[w] += st.delta[w]
		}
	}
}
