// SPDX-License-Identifier: MIT

package health

import (
	"math/rand"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/network"
)

// Snapshot is the aggregate health of a network.
type Snapshot struct {
	AvgDegree             float64 `json:"avg_degree" toml:"avg_degree"`
	Density               float64 `json:"density" toml:"density"`
	AvgClusteringCoeff    float64 `json:"avg_clustering_coeff" toml:"avg_clustering_coeff"`
	GiantComponentSize    int     `json:"giant_component_size" toml:"giant_component_size"`
	AvgPathLength         float64 `json:"avg_path_length" toml:"avg_path_length"`
	NetworkCentralization float64 `json:"network_centralization" toml:"network_centralization"`
	ActiveRatio           float64 `json:"active_ratio" toml:"active_ratio"`
	ChurnRate             float64 `json:"churn_rate" toml:"churn_rate"`
}

// Analyze computes the Snapshot of g. people supplies last-seen years for
// the activity ratios and may be nil.
func Analyze(g *network.Graph, people network.People, opts ...Option) Snapshot {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	names := g.Names()
	n := len(names)
	if n == 0 {
		return Snapshot{}
	}
	nf := float64(n)

	totalDegree, maxDegree := 0, 0
	for _, name := range names {
		d := g.Degree(name)
		totalDegree += d
		maxDegree = max(maxDegree, d)
	}

	var snap Snapshot
	snap.AvgDegree = float64(totalDegree) / nf
	if n > 1 {
		snap.Density = float64(g.EdgeCount()) / (nf * (nf - 1) / 2)
	}

	sumCC := 0.0
	for _, v := range centrality.Clustering(g) {
		sumCC += v
	}
	snap.AvgClusteringCoeff = sumCC / nf
	snap.GiantComponentSize = GiantComponentSize(g)

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}
	snap.AvgPathLength = avgPathLength(g, names, o.SampleSize, rng)

	if n > 2 {
		gap := float64(maxDegree*n - totalDegree)
		snap.NetworkCentralization = gap / ((nf - 1) * (nf - 2))
	}

	active, churned := 0, 0
	for _, name := range names {
		p, ok := people.Lookup(name)
		if !ok || p.LastYear == 0 {
			continue
		}
		if p.LastYear >= o.CurrentYear-ActiveWithinYears {
			active++
		}
		if p.LastYear < o.CurrentYear-ChurnAfterYears {
			churned++
		}
	}
	snap.ActiveRatio = float64(active) / nf
	snap.ChurnRate = float64(churned) / nf

	return snap
}

// avgPathLength averages finite BFS distances from min(sampleSize, N)
// sources drawn with replacement. Unreachable pairs are ignored; a sample
// with no reachable pair yields 0.
func avgPathLength(g *network.Graph, names []string, sampleSize int, rng *rand.Rand) float64 {
	n := len(names)
	if n < 2 {
		return 0
	}

	total, pairs := 0, 0
	for _, idx := range sampleIndices(rng, n, min(sampleSize, n)) {
		src := names[idx]
		for target, d := range bfs.Distances(g, src) {
			if target == src {
				continue
			}
			total += d
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return float64(total) / float64(pairs)
}
