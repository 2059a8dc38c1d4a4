// SPDX-License-Identifier: MIT

// Package evolution replays a network year by year: who is active, who
// joins, who drops out, how long the active people have been around and how
// varied they are.
//
// A person is active in every year of [first, last], with an unknown first
// year read as the start year and an unknown last year as the current year.
// Only people who are nodes of the graph are counted. Diversity is the
// base-2 Shannon entropy of the active people's categories, an empty
// category counting as "unknown".
package evolution

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/constellation/network"
)

// UnknownCategory labels people without a category.
const UnknownCategory = "unknown"

// Year is one step of the evolution.
type Year struct {
	Year           int     `json:"year" toml:"year"`
	Active         int     `json:"active" toml:"active"`
	New            int     `json:"new" toml:"new"`
	Lost           int     `json:"lost" toml:"lost"`
	NetworkAge     float64 `json:"network_age" toml:"network_age"`
	DiversityIndex float64 `json:"diversity_index" toml:"diversity_index"`
}

// Option configures Track.
type Option func(*options)

type options struct {
	startYear   int
	currentYear int
}

// WithStartYear sets the first tracked year.
func WithStartYear(year int) Option {
	return func(o *options) { o.startYear = year }
}

// WithCurrentYear sets the last tracked year.
func WithCurrentYear(year int) Option {
	return func(o *options) { o.currentYear = year }
}

// Track returns one Year per year from the start year to the current year,
// inclusive. A start after the current year yields an empty slice.
func Track(g *network.Graph, people network.People, opts ...Option) []Year {
	o := options{startYear: network.DefaultStartYear, currentYear: network.DefaultCurrentYear}
	for _, opt := range opts {
		opt(&o)
	}
	if o.startYear > o.currentYear {
		return []Year{}
	}

	var tracked []network.Person
	for _, name := range g.Names() {
		if p, ok := people.Lookup(name); ok {
			tracked = append(tracked, p)
		}
	}

	out := make([]Year, 0, o.currentYear-o.startYear+1)
	for year := o.startYear; year <= o.currentYear; year++ {
		y := Year{Year: year}
		ageSum := 0
		categories := make(map[string]int)

		for _, p := range tracked {
			first := p.First(o.startYear)
			active := p.ActiveIn(year, o.startYear, o.currentYear)
			if active {
				y.Active++
				ageSum += year - first + 1
				if first == year {
					y.New++
				}
				cat := p.Category
				if cat == "" {
					cat = UnknownCategory
				}
				categories[cat]++
			}
			if year > o.startYear && !active && p.ActiveIn(year-1, o.startYear, o.currentYear) {
				y.Lost++
			}
		}

		if y.Active > 0 {
			y.NetworkAge = float64(ageSum) / float64(y.Active)
			y.DiversityIndex = entropy(categories, y.Active)
		}
		out = append(out, y)
	}
	return out
}

// entropy is the base-2 Shannon entropy of the category counts. Categories
// are summed in sorted order so results are bit-for-bit reproducible.
func entropy(counts map[string]int, total int) float64 {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := make([]float64, len(keys))
	for i, k := range keys {
		p[i] = float64(counts[k]) / float64(total)
	}
	return stat.Entropy(p) / math.Ln2
}
