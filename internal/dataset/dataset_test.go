// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/internal/dataset"
	"github.com/katalvlaran/constellation/network"
)

const constellationJSON = `{
  "nodes": [{"name": "Ann", "category": "family"}, "Bob", {"name": "Cy"}],
  "links": [
    {"source": "Ann", "target": "Bob", "weight": 2},
    {"source": {"name": "Bob"}, "target": {"name": "Cy"}},
    {"source": "Cy", "target": "Ghost"}
  ]
}`

func TestLoadFS_Full(t *testing.T) {
	fsys := fstest.MapFS{
		dataset.ConstellationFile: {Data: []byte(constellationJSON)},
		dataset.CoOccurrenceFile: {Data: []byte(`[
			{"person_a": "Bob", "person_b": "Ann", "co_occurrence_count": 2, "year": 2010},
			{"person_a": "Ann", "person_b": "Bob", "co_occurrence_count": 1, "year": 2011},
			{"person_a": "", "person_b": "Bob", "co_occurrence_count": 9}
		]`)},
		dataset.PersonArcFile: {Data: []byte(`[
			{"person": "Ann", "first_year": 2008, "last_year": 2020, "mention_count": 12},
			{"name": "Bob", "total_mentions": 4, "category": "work"}
		]`)},
	}

	ds, err := dataset.LoadFS(fsys)
	require.NoError(t, err)

	g := ds.Graph()
	assert.Equal(t, []string{"Ann", "Bob", "Cy"}, g.Names())
	assert.Equal(t, 2, g.EdgeCount())
	w, ok := g.Weight("Bob", "Ann")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	assert.Equal(t, 3, ds.CoOccurrences.Count("Ann", "Bob"))
	assert.Len(t, ds.CoOccurrences, 1)

	ann, ok := ds.People.Lookup("Ann")
	require.True(t, ok)
	assert.Equal(t, 12, ann.TotalMentions)
	assert.Equal(t, 2020, ann.LastYear)
}

func TestLoadFS_OptionalFilesMissing(t *testing.T) {
	ds, err := dataset.LoadFS(fstest.MapFS{
		dataset.ConstellationFile: {Data: []byte(constellationJSON)},
	})
	require.NoError(t, err)
	assert.Empty(t, ds.CoOccurrences)
	assert.Empty(t, ds.People)
}

func TestLoadFS_Errors(t *testing.T) {
	_, err := dataset.LoadFS(fstest.MapFS{})
	assert.ErrorIs(t, err, dataset.ErrNoConstellation)

	_, err = dataset.LoadFS(fstest.MapFS{
		dataset.ConstellationFile: {Data: []byte(`{"nodes": 7}`)},
	})
	assert.ErrorIs(t, err, dataset.ErrDecode)

	_, err = dataset.LoadFS(fstest.MapFS{
		dataset.ConstellationFile: {Data: []byte(constellationJSON)},
		dataset.PersonArcFile:     {Data: []byte(`{`)},
	})
	assert.ErrorIs(t, err, dataset.ErrDecode)
}

func TestWriteConstellation_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := dataset.Constellation{
		Nodes: network.Nodes("A", "B"),
		Links: []network.Link{network.WeightedEdge("A", "B", 3)},
	}
	require.NoError(t, dataset.WriteConstellation(dir, want))

	ds, err := dataset.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, ds.Constellation)
}
