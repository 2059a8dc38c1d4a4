// SPDX-License-Identifier: MIT

package community

import (
	"sort"

	"github.com/katalvlaran/constellation/network"
)

// minGain is the smallest modularity gain accepted as an improvement.
const minGain = 1e-12

// Result is the outcome of Detect.
type Result struct {
	// Communities maps every node name to its community id.
	Communities map[string]int

	// Modularity of the final partition. Can be negative.
	Modularity float64

	// Colors maps every community id to a Palette entry.
	Colors map[int]string

	// Passes is the number of full passes run, the last one moving nothing.
	Passes int

	// History holds the modularity after each pass; it never decreases.
	History []float64
}

// Members groups node names by community id, each group sorted.
func (r Result) Members() map[int][]string {
	out := make(map[int][]string)
	for name, id := range r.Communities {
		out[id] = append(out[id], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// ColorOf returns the color of the community that name belongs to, or ""
// when name is unknown.
func (r Result) ColorOf(name string) string {
	id, ok := r.Communities[name]
	if !ok {
		return ""
	}
	return r.Colors[id]
}

// Detect runs greedy modularity optimization over g.
func Detect(g *network.Graph) Result {
	d := newDetector(g)
	passes, history := 0, []float64{}
	for {
		moved := d.pass()
		passes++
		history = append(history, d.modularity())
		if !moved {
			break
		}
	}

	names := g.Names()
	communities := make(map[string]int, len(names))
	for i, name := range names {
		communities[name] = d.comm[i]
	}

	return Result{
		Communities: communities,
		Modularity:  history[len(history)-1],
		Colors:      colorize(communities),
		Passes:      passes,
		History:     history,
	}
}

// detector holds index-based state for the greedy loop.
type detector struct {
	nbrs  [][]int
	deg   []float64
	comm  []int
	aggs  []aggregate // indexed by community id; ids are node indices
	fourM float64
	twoM  float64
}

func newDetector(g *network.Graph) *detector {
	names := g.Names()
	n := len(names)
	d := &detector{
		nbrs:  make([][]int, n),
		deg:   make([]float64, n),
		comm:  make([]int, n),
		aggs:  make([]aggregate, n),
		fourM: 4 * float64(g.EdgeCount()),
		twoM:  2 * float64(g.EdgeCount()),
	}
	for i, name := range names {
		list := g.Neighbors(name)
		d.nbrs[i] = make([]int, len(list))
		for j, nb := range list {
			d.nbrs[i][j] = g.Index(nb)
		}
		k := float64(len(list))
		d.deg[i] = k
		d.comm[i] = i
		d.aggs[i] = aggregate{degree: k, squared: k * k}
	}
	return d
}

// pass visits every node once and reports whether any node moved.
func (d *detector) pass() bool {
	if d.twoM == 0 {
		return false
	}

	moved := false
	for v := range d.comm {
		from := d.comm[v]
		best, bestGain := from, 0.0

		links := d.linksByCommunity(v)
		for _, to := range d.candidates(v) {
			if to == from {
				continue
			}
			if gain := d.gain(v, from, to, links); gain > bestGain+minGain {
				best, bestGain = to, gain
			}
		}

		if best != from {
			d.move(v, from, best, links)
			moved = true
		}
	}
	return moved
}

// candidates lists the distinct communities of v's neighbors in neighbor
// order.
func (d *detector) candidates(v int) []int {
	out := make([]int, 0, len(d.nbrs[v]))
	seen := make(map[int]struct{}, len(d.nbrs[v]))
	for _, u := range d.nbrs[v] {
		c := d.comm[u]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// linksByCommunity counts v's edges into each community.
func (d *detector) linksByCommunity(v int) map[int]float64 {
	links := make(map[int]float64, len(d.nbrs[v]))
	for _, u := range d.nbrs[v] {
		links[d.comm[u]]++
	}
	return links
}

// gain is ΔQ of moving v from community from to community to.
func (d *detector) gain(v, from, to int, links map[int]float64) float64 {
	oldFrom, oldTo := d.aggs[from], d.aggs[to]
	newFrom, newTo := d.shifted(v, oldFrom, oldTo, links[from], links[to])

	before := oldFrom.term(d.fourM) + oldTo.term(d.fourM)
	after := newFrom.term(d.fourM) + newTo.term(d.fourM)
	return (after - before) / d.twoM
}

// shifted returns the aggregates of from and to after v leaves from for to.
func (d *detector) shifted(v int, from, to aggregate, linksFrom, linksTo float64) (aggregate, aggregate) {
	k := d.deg[v]
	from.internal -= linksFrom
	from.degree -= k
	from.squared -= k * k
	to.internal += linksTo
	to.degree += k
	to.squared += k * k
	return from, to
}

func (d *detector) move(v, from, to int, links map[int]float64) {
	d.aggs[from], d.aggs[to] = d.shifted(v, d.aggs[from], d.aggs[to], links[from], links[to])
	d.comm[v] = to
}

func (d *detector) modularity() float64 {
	if d.twoM == 0 {
		return 0
	}
	q := 0.0
	for _, a := range d.aggs {
		q += a.term(d.fourM)
	}
	return q / d.twoM
}
