// SPDX-License-Identifier: MIT

package network_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/network"
)

func TestBuild_PrunesLoopsAndUnknownEndpoints(t *testing.T) {
	nodes := network.Nodes("A", "B", "C", "W")
	links := []network.Link{
		network.Edge("A", "B"),
		network.Edge("A", "A"),     // self-loop
		network.Edge("B", "ghost"), // unknown target
		network.Edge("", "C"),      // missing source
		network.Edge("C", "B"),
	}

	g := network.Build(nodes, links)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"A", "C"}, g.Neighbors("B"))
	assert.Empty(t, g.Neighbors("W"), "isolated node keeps an empty set")
	assert.Contains(t, g.Adjacency(), "W")
	assert.False(t, g.HasEdge("A", "A"))
}

func TestBuild_Symmetric(t *testing.T) {
	g := network.Build(network.Nodes("A", "B", "C"), []network.Link{
		network.Edge("A", "B"),
		network.Edge("C", "A"),
	})

	for a, set := range g.Adjacency() {
		for b := range set {
			assert.True(t, g.HasEdge(b, a), "%s–%s must be symmetric", a, b)
		}
	}
}

func TestBuild_DuplicatesKeepFirst(t *testing.T) {
	g := network.Build(network.Nodes("B", "A", "B"), []network.Link{
		network.WeightedEdge("A", "B", 2),
		network.WeightedEdge("B", "A", 5),
	})

	assert.Equal(t, []string{"B", "A"}, g.Names())
	assert.Equal(t, 1, g.EdgeCount())

	w, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 1, g.Degree("A"))
}

func TestBuild_DefaultWeight(t *testing.T) {
	g := network.Build(network.Nodes("A", "B"), []network.Link{network.Edge("A", "B")})

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, network.DefaultWeight, w)
	assert.Equal(t, network.DefaultWeight, g.Edges()[0].Weight)
}

func TestBuild_Empty(t *testing.T) {
	g := network.Build(nil, nil)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, -1, g.Index("A"))
}

func TestGraph_Mutual(t *testing.T) {
	// A and B share C and D; E only touches A.
	g := network.Build(network.Nodes("A", "B", "C", "D", "E"), []network.Link{
		network.Edge("A", "B"),
		network.Edge("A", "C"), network.Edge("B", "C"),
		network.Edge("A", "D"), network.Edge("B", "D"),
		network.Edge("A", "E"),
	})

	assert.Equal(t, []string{"C", "D"}, g.Mutual("A", "B"))
	assert.Equal(t, []string{"C", "D"}, g.Mutual("B", "A"))
	assert.Nil(t, g.Mutual("E", "C"))
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, "Alice|Bob", network.PairKey("Bob", "Alice"))
	assert.Equal(t, network.PairKey("x", "y"), network.PairKey("y", "x"))

	a, b, ok := network.SplitPairKey("Alice|Bob")
	require.True(t, ok)
	assert.Equal(t, "Alice", a)
	assert.Equal(t, "Bob", b)

	_, _, ok = network.SplitPairKey("nobody")
	assert.False(t, ok)
}

func TestCoOccurrences(t *testing.T) {
	co := network.CoOccurrences{}
	co.Add("B", "A", 2)
	co.Add("A", "B", 1)

	assert.Equal(t, 3, co.Count("A", "B"))
	assert.Equal(t, 0, co.Count("A", "C"))

	var empty network.CoOccurrences
	assert.Equal(t, 0, empty.Count("A", "B"))
}

func TestJSON_EndpointShapes(t *testing.T) {
	raw := `{
		"nodes": ["A", {"name": "B", "category": "friend"}],
		"links": [
			{"source": "A", "target": {"name": "B", "id": 7}, "weight": 3},
			{"source": {"name": "B"}, "target": "A"},
			{"source": null, "target": "A"}
		]
	}`
	var doc struct {
		Nodes []network.Node `json:"nodes"`
		Links []network.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, network.Node{Name: "A"}, doc.Nodes[0])
	assert.Equal(t, network.Node{Name: "B", Category: "friend"}, doc.Nodes[1])
	assert.Equal(t, network.Endpoint("B"), doc.Links[0].Target)
	assert.Equal(t, 3.0, doc.Links[0].Weight)
	assert.Equal(t, network.Endpoint("B"), doc.Links[1].Source)
	assert.Equal(t, network.Endpoint(""), doc.Links[2].Source)

	g := network.Build(doc.Nodes, doc.Links)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestJSON_PersonAliases(t *testing.T) {
	raw := `[
		{"person": "A", "first_year": 2005, "last_year": 2010, "mention_count": 4},
		{"name": "B", "total_mentions": 9, "category": "family"},
		{"first_year": 2001}
	]`
	var recs []network.Person
	require.NoError(t, json.Unmarshal([]byte(raw), &recs))

	people := network.IndexPeople(recs)
	require.Len(t, people, 2)

	a, ok := people.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 4, a.TotalMentions)
	assert.Equal(t, 6, a.Span(network.DefaultStartYear, network.DefaultCurrentYear))

	b, _ := people.Lookup("B")
	assert.Equal(t, 9, b.TotalMentions)
	assert.Equal(t, 2004, b.First(network.DefaultStartYear))
	assert.Equal(t, 2026, b.Last(network.DefaultCurrentYear))
	assert.True(t, b.ActiveIn(2015, 2004, 2026))
	assert.False(t, a.ActiveIn(2011, 2004, 2026))

	var none network.People
	_, ok = none.Lookup("A")
	assert.False(t, ok)
}

func TestNames_KeepsInputOrder(t *testing.T) {
	nodes := network.Nodes("b", "a", "b")
	assert.Equal(t, []string{"b", "a"}, network.Build(nodes, nil).Names())
}
