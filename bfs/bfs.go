// SPDX-License-Identifier: MIT
//
// bfs.go - walker and the public BFS / Distances entry points.
//
// Contract:
//   - Input is validated before any work: nil graph → ErrGraphNil, bad
//     option → ErrOptionViolation, unknown start → ErrStartNotFound.
//   - A node is marked visited when enqueued, never twice.
//   - On a hook abort the partial Result is returned with the wrapped error.
//
// Complexity:
//   - Time: O(V + E); each neighbor list is scanned once.
//   - Space: O(V) for the queue, visited set and Result maps.
//
// Determinism:
//   - network.Graph keeps neighbor lists sorted and the queue is FIFO, so
//     Order, Depth and Parent are identical across runs.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/constellation/network"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *network.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *network.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(start) {
		return nil, ErrStartNotFound
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed the queue with start at depth 0; it has no parent.
	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

// Distances returns hop distances from start to every reachable node,
// start included at 0. Unknown start yields nil.
func Distances(g *network.Graph, start string) map[string]int {
	res, err := BFS(g, start)
	if err != nil {
		return nil
	}
	return res.Depth
}

// enqueue marks name visited at depth d, records its parent and queues it.
func (w *walker) enqueue(name string, d int, parent string) {
	w.visited[name] = true
	w.res.Depth[name] = d
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.opts.OnEnqueue(name, d)
	w.queue = append(w.queue, queueItem{name: name, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]

		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}

		// Children would exceed MaxDepth: visit this node but do not expand.
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.name) {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.name, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.name)
		}
	}
	return nil
}
