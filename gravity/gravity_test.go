// SPDX-License-Identifier: MIT

package gravity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/gravity"
	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/score"
)

const eps = 1e-9

func TestCompute_Weights(t *testing.T) {
	g := network.Build(network.Nodes("A", "B"), []network.Link{network.Edge("A", "B")})
	pr := score.Map{"A": 1, "B": 0}
	bc := score.Map{"A": 0, "B": 1}
	cc := score.Map{"A": 0, "B": 0}
	people := network.IndexPeople([]network.Person{
		{Name: "A", FirstYear: 2020, LastYear: 2020, TotalMentions: 10},
		{Name: "B", FirstYear: 2010, LastYear: 2019, TotalMentions: 2},
	})

	got := gravity.Compute(g, pr, bc, cc, people)
	require.Len(t, got, 2)

	a, b := got["A"], got["B"]
	assert.InDelta(t, 0.30+0.15, a.SocialGravity, eps)
	assert.InDelta(t, 0.25+0.15, b.SocialGravity, eps)
	assert.Equal(t, 100, a.Percentile)
	assert.Equal(t, 0, b.Percentile)
	assert.Zero(t, a.Clustering)
	assert.Equal(t, 1.0, a.Mentions)
	assert.Equal(t, 1.0, b.Span)
}

func TestCompute_MissingRecords(t *testing.T) {
	g := network.Build(network.Nodes("A", "B", "C"), nil)
	people := network.IndexPeople([]network.Person{{Name: "C"}})

	got := gravity.Compute(g, nil, nil, nil, people)
	// C spans the full default window, A and B a single year.
	assert.Equal(t, 1.0, got["C"].Span)
	assert.Zero(t, got["A"].Span)
	assert.Zero(t, got["A"].Mentions)
	assert.InDelta(t, 0.15, got["C"].SocialGravity, eps)
}

func TestCompute_SingleNode(t *testing.T) {
	g := network.Build(network.Nodes("solo"), nil)
	got := gravity.Compute(g, score.Map{"solo": 1}, nil, nil, nil)
	assert.Zero(t, got["solo"].Percentile)
	assert.Zero(t, got["solo"].SocialGravity)
}

// TestCompute_PercentilesSpanRange checks percentiles run 0..100 and follow
// gravity order on a real centrality pipeline.
func TestCompute_PercentilesSpanRange(t *testing.T) {
	f, err := builder.Build([]builder.Option{builder.WithSeed(5)}, builder.RandomSparse(25, 0.15))
	require.NoError(t, err)
	g := f.Graph()

	got := gravity.Compute(g,
		centrality.PageRank(g), centrality.Betweenness(g), centrality.Clustering(g), nil)
	ranked := gravity.Ranked(got)
	require.Len(t, ranked, g.Len())

	lo, hi := 100, 0
	for _, s := range got {
		lo, hi = min(lo, s.Percentile), max(hi, s.Percentile)
	}
	assert.Equal(t, 0, lo)
	assert.Equal(t, 100, hi)

	for i := 1; i < len(ranked); i++ {
		prev, cur := got[ranked[i-1]], got[ranked[i]]
		assert.GreaterOrEqual(t, prev.SocialGravity, cur.SocialGravity)
		if prev.SocialGravity > cur.SocialGravity {
			assert.Greater(t, prev.Percentile, cur.Percentile)
		}
	}
}

// TestCompute_TiedPercentilesKeepNodeOrder checks that equal gravity is
// placed by graph node order, not by name.
func TestCompute_TiedPercentilesKeepNodeOrder(t *testing.T) {
	g := network.Build(network.Nodes("hub", "zed", "amy"), []network.Link{
		network.Edge("hub", "zed"),
		network.Edge("hub", "amy"),
	})

	got := gravity.Compute(g,
		centrality.PageRank(g), centrality.Betweenness(g), centrality.Clustering(g), nil)
	assert.Equal(t, 0, got["zed"].Percentile)
	assert.Equal(t, 50, got["amy"].Percentile)
	assert.Equal(t, 100, got["hub"].Percentile)
	assert.Equal(t, []string{"hub", "amy", "zed"}, gravity.Ranked(got))
}

func TestRanked_TiesByName(t *testing.T) {
	scores := map[string]gravity.Score{
		"b": {SocialGravity: 0.5},
		"a": {SocialGravity: 0.5},
		"c": {SocialGravity: 0.9},
	}
	assert.Equal(t, []string{"c", "a", "b"}, gravity.Ranked(scores))
}

func TestWithYears(t *testing.T) {
	g := network.Build(network.Nodes("A", "B"), nil)
	people := network.IndexPeople([]network.Person{{Name: "A"}, {Name: "B", FirstYear: 2000, LastYear: 2000}})
	got := gravity.Compute(g, nil, nil, nil, people, gravity.WithYears(2000, 2000))
	// Both span one year, so the span signal is flat.
	assert.Zero(t, got["A"].Span)
	assert.Zero(t, got["B"].Span)
}
