// SPDX-License-Identifier: MIT

package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/network"
)

func square() *network.Graph {
	// A–B–C–D–A
	return network.Build(network.Nodes("A", "B", "C", "D"), []network.Link{
		network.Edge("A", "B"),
		network.Edge("B", "C"),
		network.Edge("C", "D"),
		network.Edge("D", "A"),
	})
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := network.Build(network.Nodes("A"), nil)
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	g := network.Build(network.Nodes("A"), nil)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
}

// TestBFS_CycleDepths checks layering on a 4-cycle.
func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(square(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])
}

// TestBFS_Disconnected ensures BFS only explores the component of the start.
func TestBFS_Disconnected(t *testing.T) {
	g := network.Build(network.Nodes("X", "Y", "P", "Q"), []network.Link{
		network.Edge("X", "Y"),
		network.Edge("P", "Q"),
	})

	resX, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, resX.Order)

	dist := bfs.Distances(g, "P")
	assert.Equal(t, map[string]int{"P": 0, "Q": 1}, dist)
	assert.Nil(t, bfs.Distances(g, "ghost"))
}

func TestBFS_MaxDepth(t *testing.T) {
	g := network.Build(network.Nodes("A", "B", "C"), []network.Link{
		network.Edge("A", "B"),
		network.Edge("B", "C"),
	})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(square(), "A", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "B"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, res.Order)
	assert.NotContains(t, res.Depth, "B")
}

func TestBFS_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	var enqueued []string

	_, err := bfs.BFS(square(), "A",
		bfs.WithOnEnqueue(func(name string, _ int) { enqueued = append(enqueued, name) }),
		bfs.WithOnVisit(func(name string, _ int) error {
			if name == "B" {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "D"}, enqueued)
}

func TestResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(square(), "A")
	require.NoError(t, err)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, err = res.PathTo("Z")
	assert.Error(t, err)
}
