// SPDX-License-Identifier: MIT

package health_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/health"
	"github.com/katalvlaran/constellation/network"
)

const eps = 1e-9

// triangleAndLoner is A-B-C fully linked plus the isolated W.
func triangleAndLoner() *network.Graph {
	return network.Build(network.Nodes("A", "B", "C", "W"), []network.Link{
		network.Edge("A", "B"),
		network.Edge("B", "C"),
		network.Edge("C", "A"),
	})
}

func TestAnalyze_Empty(t *testing.T) {
	assert.Equal(t, health.Snapshot{}, health.Analyze(network.Build(nil, nil), nil))
}

func TestAnalyze_SingleNode(t *testing.T) {
	snap := health.Analyze(network.Build(network.Nodes("A"), nil), nil)
	assert.Zero(t, snap.Density)
	assert.Zero(t, snap.AvgPathLength)
	assert.Zero(t, snap.NetworkCentralization)
	assert.Equal(t, 1, snap.GiantComponentSize)
}

func TestAnalyze_TriangleAndLoner(t *testing.T) {
	snap := health.Analyze(triangleAndLoner(), nil)

	assert.InDelta(t, 1.5, snap.AvgDegree, eps)
	assert.InDelta(t, 0.5, snap.Density, eps)
	assert.InDelta(t, 0.75, snap.AvgClusteringCoeff, eps)
	assert.Equal(t, 3, snap.GiantComponentSize)
	// Every reachable pair is adjacent; a sample of only W reaches nothing.
	assert.True(t, snap.AvgPathLength == 1 || snap.AvgPathLength == 0, "got %v", snap.AvgPathLength)
	// maxDeg 2: gaps 0,0,0,2 over (3·2).
	assert.InDelta(t, 2.0/6, snap.NetworkCentralization, eps)
}

func TestAnalyze_StarCentralization(t *testing.T) {
	f, err := builder.Build(nil, builder.Star(5))
	require.NoError(t, err)
	snap := health.Analyze(f.Graph(), nil)
	assert.InDelta(t, 1.0, snap.NetworkCentralization, eps)

	f, err = builder.Build(nil, builder.Complete(5))
	require.NoError(t, err)
	snap = health.Analyze(f.Graph(), nil)
	assert.Zero(t, snap.NetworkCentralization)
	assert.InDelta(t, 1.0, snap.Density, eps)
	assert.InDelta(t, 1.0, snap.AvgPathLength, eps)
}

func TestAnalyze_TwoNodesNoCentralization(t *testing.T) {
	f, err := builder.Build(nil, builder.Path(2))
	require.NoError(t, err)
	snap := health.Analyze(f.Graph(), nil)
	assert.Zero(t, snap.NetworkCentralization)
	assert.InDelta(t, 1.0, snap.AvgPathLength, eps)
}

// TestAnalyze_PathLengthBounds keeps the P4 estimate between the per-source
// extremes 4/3 (an inner source) and 2 (an end source).
func TestAnalyze_PathLengthBounds(t *testing.T) {
	f, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)
	g := f.Graph()

	for seed := int64(0); seed < 5; seed++ {
		snap := health.Analyze(g, nil, health.WithSeed(seed))
		assert.GreaterOrEqual(t, snap.AvgPathLength, 4.0/3-eps)
		assert.LessOrEqual(t, snap.AvgPathLength, 2.0+eps)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	f, err := builder.Build([]builder.Option{builder.WithSeed(11)}, builder.RandomSparse(80, 0.05))
	require.NoError(t, err)
	g := f.Graph()

	assert.Equal(t, health.Analyze(g, nil), health.Analyze(g, nil, health.WithSeed(1)))
	assert.Equal(t,
		health.Analyze(g, nil, health.WithSeed(9)),
		health.Analyze(g, nil, health.WithRand(rand.New(rand.NewSource(9)))),
	)
}

func TestAnalyze_Activity(t *testing.T) {
	g := network.Build(network.Nodes("now", "recent", "middle", "gone", "undated", "unknown"), nil)
	people := network.IndexPeople([]network.Person{
		{Name: "now", LastYear: 2026},
		{Name: "recent", LastYear: 2023},
		{Name: "middle", LastYear: 2021},
		{Name: "gone", LastYear: 2020},
		{Name: "undated", FirstYear: 2010},
	})

	snap := health.Analyze(g, people, health.WithCurrentYear(2026))
	assert.InDelta(t, 2.0/6, snap.ActiveRatio, eps)
	assert.InDelta(t, 1.0/6, snap.ChurnRate, eps)
}

func TestComponents(t *testing.T) {
	g := network.Build(network.Nodes("x", "A", "B", "C", "P", "Q"), []network.Link{
		network.Edge("A", "B"),
		network.Edge("B", "C"),
		network.Edge("P", "Q"),
	})

	comps := health.Components(g)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"P", "Q"}, {"x"}}, comps)
	assert.Equal(t, 3, health.GiantComponentSize(g))
	assert.Zero(t, health.GiantComponentSize(network.Build(nil, nil)))
}

// TestComponents_DiscoveryOrder lists members in walk order from the first
// node of each component, with equal sizes kept in graph order.
func TestComponents_DiscoveryOrder(t *testing.T) {
	g := network.Build(network.Nodes("leaf1", "D", "hub", "leaf2", "E"), []network.Link{
		network.Edge("hub", "leaf2"),
		network.Edge("hub", "leaf1"),
		network.Edge("D", "E"),
	})

	comps := health.Components(g)
	assert.Equal(t, [][]string{{"leaf1", "hub", "leaf2"}, {"D", "E"}}, comps)
}
