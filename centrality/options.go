// SPDX-License-Identifier: MIT

package centrality

// Defaults of the PageRank engine.
const (
	DefaultDamping    = 0.85
	DefaultIterations = 100
)

// PageRankOption configures PageRank.
type PageRankOption func(*PageRankOptions)

// PageRankOptions holds PageRank parameters.
type PageRankOptions struct {
	// Damping is the probability of following an edge rather than teleporting.
	Damping float64

	// Iterations is the number of power-iteration rounds.
	Iterations int

	// Tolerance, when > 0, stops early once the largest per-node change of
	// a round falls below it. Zero keeps the fixed iteration count.
	Tolerance float64
}

// DefaultPageRankOptions returns damping 0.85, 100 iterations, no early exit.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:    DefaultDamping,
		Iterations: DefaultIterations,
	}
}

// WithDamping sets the damping factor. The value is used as given.
func WithDamping(d float64) PageRankOption {
	return func(o *PageRankOptions) { o.Damping = d }
}

// WithIterations sets the iteration count. Values ≤ 0 run no rounds.
func WithIterations(n int) PageRankOption {
	return func(o *PageRankOptions) { o.Iterations = n }
}

// WithTolerance enables the epsilon early exit; the iteration count stays an
// upper bound.
func WithTolerance(eps float64) PageRankOption {
	return func(o *PageRankOptions) { o.Tolerance = eps }
}
