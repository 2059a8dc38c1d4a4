// SPDX-License-Identifier: MIT
//
// api.go - Fixture, Constructor and the Build orchestrator.
//
// Contract:
//   - Build applies constructors left to right against one Fixture, so
//     later constructors may link to names earlier ones registered.
//   - A nil constructor fails with ErrConstructFailed; any constructor
//     error aborts the build and is wrapped as "Build: %w".
//   - Shape maps CLI shape names to constructors; unknown names fail with
//     ErrUnknownShape.
//
// Complexity:
//   - Build: O(Σ constructor cost); AddNode is O(1) amortized.
//
// Determinism:
//   - Nodes keep first-seen order and links keep emission order, so equal
//     options and constructors always yield the same Fixture.

package builder

import (
	"fmt"

	"github.com/katalvlaran/constellation/network"
)

// Fixture accumulates nodes and links emitted by constructors. Nodes are
// registered once, in first-seen order.
type Fixture struct {
	Nodes []network.Node
	Links []network.Link

	seen map[string]struct{}
}

// AddNode registers name unless already present.
func (f *Fixture) AddNode(name string) {
	if f.seen == nil {
		f.seen = make(map[string]struct{})
	}
	if _, ok := f.seen[name]; ok {
		return
	}
	f.seen[name] = struct{}{}
	f.Nodes = append(f.Nodes, network.Node{Name: name})
}

// AddLink appends an a–b link with weight w, registering both endpoints.
func (f *Fixture) AddLink(a, b string, w float64) {
	f.AddNode(a)
	f.AddNode(b)
	f.Links = append(f.Links, network.WeightedEdge(a, b, w))
}

// Graph builds the network.Graph of the fixture.
func (f *Fixture) Graph() *network.Graph {
	return network.Build(f.Nodes, f.Links)
}

// Constructor applies a deterministic mutation to f using the resolved
// config. Constructors validate parameters before emitting anything.
type Constructor func(f *Fixture, cfg config) error

// Build resolves opts and applies every constructor in order to a fresh
// Fixture. The first constructor error is wrapped as "Build: %w".
func Build(opts []Option, cons ...Constructor) (*Fixture, error) {
	// Resolve options once; constructors only read cfg.
	cfg := newConfig(opts...)
	f := &Fixture{}

	// Apply constructors in order, stopping at the first failure.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return f, nil
}

// Shape returns the constructor registered under name ("path", "star",
// "cycle", "wheel", "complete", "random"). p is only read by "random".
func Shape(name string, n int, p float64) (Constructor, error) {
	switch name {
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "cycle":
		return Cycle(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}
