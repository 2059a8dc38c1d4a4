// SPDX-License-Identifier: MIT

package evolution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/evolution"
	"github.com/katalvlaran/constellation/network"
)

const eps = 1e-9

func TestTrack_YearRange(t *testing.T) {
	g := network.Build(nil, nil)

	years := evolution.Track(g, nil)
	require.Len(t, years, 23)
	assert.Equal(t, 2004, years[0].Year)
	assert.Equal(t, 2026, years[22].Year)

	years = evolution.Track(g, nil, evolution.WithStartYear(2010), evolution.WithCurrentYear(2012))
	assert.Len(t, years, 3)

	years = evolution.Track(g, nil, evolution.WithStartYear(2020), evolution.WithCurrentYear(2019))
	assert.NotNil(t, years)
	assert.Empty(t, years)
}

func TestTrack_Counts(t *testing.T) {
	g := network.Build(network.Nodes("A", "B", "C"), nil)
	people := network.IndexPeople([]network.Person{
		{Name: "A", FirstYear: 2010, LastYear: 2011, Category: "family"},
		{Name: "B", FirstYear: 2011, Category: "work"},
		{Name: "C", LastYear: 2010},
		{Name: "Outsider", FirstYear: 2010, LastYear: 2012},
	})

	years := evolution.Track(g, people, evolution.WithStartYear(2009), evolution.WithCurrentYear(2013))
	require.Len(t, years, 5)
	byYear := map[int]evolution.Year{}
	for _, y := range years {
		byYear[y.Year] = y
	}

	// 2009: only C (first year unknown → 2009).
	assert.Equal(t, 1, byYear[2009].Active)
	assert.Equal(t, 1, byYear[2009].New)
	assert.Zero(t, byYear[2009].Lost)

	// 2010: A joins, C still active.
	assert.Equal(t, 2, byYear[2010].Active)
	assert.Equal(t, 1, byYear[2010].New)
	assert.InDelta(t, (1.0+2.0)/2, byYear[2010].NetworkAge, eps)

	// 2011: C dropped out, B joined.
	assert.Equal(t, 2, byYear[2011].Active)
	assert.Equal(t, 1, byYear[2011].New)
	assert.Equal(t, 1, byYear[2011].Lost)
	assert.InDelta(t, 1.0, byYear[2011].DiversityIndex, eps)

	// 2012: A dropped out.
	assert.Equal(t, 1, byYear[2012].Active)
	assert.Equal(t, 1, byYear[2012].Lost)
	assert.Zero(t, byYear[2012].DiversityIndex)
}

func TestTrack_FirstYearNeverLost(t *testing.T) {
	g := network.Build(network.Nodes("A"), nil)
	people := network.IndexPeople([]network.Person{{Name: "A", FirstYear: 2030}})
	years := evolution.Track(g, people, evolution.WithStartYear(2004), evolution.WithCurrentYear(2005))
	for _, y := range years {
		assert.Zero(t, y.Active)
		assert.Zero(t, y.Lost)
		assert.Zero(t, y.NetworkAge)
	}
}

func TestTrack_DiversityUnknownCategory(t *testing.T) {
	g := network.Build(network.Nodes("A", "B", "C", "D"), nil)
	people := network.IndexPeople([]network.Person{
		{Name: "A", Category: "x"},
		{Name: "B", Category: "y"},
		{Name: "C", Category: "z"},
		{Name: "D"},
	})
	years := evolution.Track(g, people, evolution.WithStartYear(2020), evolution.WithCurrentYear(2020))
	require.Len(t, years, 1)
	assert.InDelta(t, math.Log2(4), years[0].DiversityIndex, eps)
	assert.Equal(t, 4, years[0].New)
}
