// SPDX-License-Identifier: MIT

// Package gravity blends structural and biographical signals into one
// "social gravity" score per person and ranks people by it.
//
// Five inputs are min-max normalized over the node set and weighted:
//
//	gravity = 0.30·PageRank + 0.25·Betweenness + 0.15·Clustering
//	        + 0.15·Mentions + 0.15·Span
//
// Mentions default to 0 and Span to 1 for people without a record; a record
// with unknown years spans [start year, current year]. Percentile places a
// person within the ascending gravity order: round(100·i/(N−1)), 0 when N=1.
// Equal gravity keeps graph node order there.
package gravity

import (
	"math"
	"sort"

	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/score"
)

// Component weights of the gravity blend.
const (
	PageRankWeight    = 0.30
	BetweennessWeight = 0.25
	ClusteringWeight  = 0.15
	MentionsWeight    = 0.15
	SpanWeight        = 0.15
)

// Score is the per-person breakdown. All components are normalized.
type Score struct {
	SocialGravity float64 `json:"social_gravity" toml:"social_gravity"`
	PageRank      float64 `json:"pagerank" toml:"pagerank"`
	Betweenness   float64 `json:"betweenness" toml:"betweenness"`
	Clustering    float64 `json:"clustering" toml:"clustering"`
	Mentions      float64 `json:"mentions" toml:"mentions"`
	Span          float64 `json:"span" toml:"span"`
	Percentile    int     `json:"percentile" toml:"percentile"`
}

// Option configures Compute.
type Option func(*options)

type options struct {
	startYear   int
	currentYear int
}

// WithYears sets the window that resolves unknown first and last years.
func WithYears(start, current int) Option {
	return func(o *options) {
		o.startYear = start
		o.currentYear = current
	}
}

// Compute scores every node of g from the centrality maps pr, bc, cc and
// the person records. Nodes absent from a map read as 0 there.
func Compute(g *network.Graph, pr, bc, cc score.Map, people network.People, opts ...Option) map[string]Score {
	o := options{startYear: network.DefaultStartYear, currentYear: network.DefaultCurrentYear}
	for _, opt := range opts {
		opt(&o)
	}

	names := g.Names()
	mentions := make(score.Map, len(names))
	spans := make(score.Map, len(names))
	for _, name := range names {
		p, ok := people.Lookup(name)
		if !ok {
			mentions[name] = 0
			spans[name] = 1
			continue
		}
		mentions[name] = float64(p.TotalMentions)
		spans[name] = float64(p.Span(o.startYear, o.currentYear))
	}

	normPR := score.Normalize(pr)
	normBC := score.Normalize(bc)
	normCC := score.Normalize(cc)
	normM := score.Normalize(mentions)
	normS := score.Normalize(spans)

	out := make(map[string]Score, len(names))
	for _, name := range names {
		s := Score{
			PageRank:    normPR[name],
			Betweenness: normBC[name],
			Clustering:  normCC[name],
			Mentions:    normM[name],
			Span:        normS[name],
		}
		s.SocialGravity = PageRankWeight*s.PageRank +
			BetweennessWeight*s.Betweenness +
			ClusteringWeight*s.Clustering +
			MentionsWeight*s.Mentions +
			SpanWeight*s.Span
		out[name] = s
	}

	ascending := make([]string, len(names))
	copy(ascending, names)
	sort.SliceStable(ascending, func(i, j int) bool {
		return out[ascending[i]].SocialGravity < out[ascending[j]].SocialGravity
	})
	denom := float64(max(len(ascending)-1, 1))
	for i, name := range ascending {
		s := out[name]
		s.Percentile = int(math.Round(float64(i) / denom * 100))
		out[name] = s
	}
	return out
}

// Ranked returns names by descending gravity, ties by name.
func Ranked(scores map[string]Score) []string {
	m := make(score.Map, len(scores))
	for name, s := range scores {
		m[name] = s.SocialGravity
	}
	items := m.Sorted()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
