// SPDX-License-Identifier: MIT

package relation

import (
	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/score"
)

// Relationship is the categorical reading of a strength score.
type Relationship string

// Relationship classes, strongest first.
const (
	Strong   Relationship = "strong"
	Moderate Relationship = "moderate"
	Weak     Relationship = "weak"
	Dormant  Relationship = "dormant"
)

// Classify maps a strength score to its Relationship.
func Classify(strength float64) Relationship {
	switch {
	case strength > 2:
		return Strong
	case strength > 1:
		return Moderate
	case strength > 0:
		return Weak
	default:
		return Dormant
	}
}

// Pair is the full analysis of two people.
type Pair struct {
	A                string       `json:"a" toml:"a"`
	B                string       `json:"b" toml:"b"`
	SharedYears      int          `json:"shared_years" toml:"shared_years"`
	CoOccurrences    int          `json:"co_occurrences" toml:"co_occurrences"`
	MutualFriends    []string     `json:"mutual_friends" toml:"mutual_friends"`
	StrengthScore    float64      `json:"strength_score" toml:"strength_score"`
	CombinedPageRank float64      `json:"combined_pagerank" toml:"combined_pagerank"`
	Relationship     Relationship `json:"relationship" toml:"relationship"`
	Hops             int          `json:"hops" toml:"hops"`
	Path             []string     `json:"path" toml:"path"`
	Detour           int          `json:"detour" toml:"detour"`
}

// AnalyzePair compares a and b. The names need not be linked or even be
// in g; absent data contributes zero.
//
//	strength = weight(a,b) (0 when unlinked) + CoOccurrenceBonus·co + MutualBonus·|mutual|
//
// SharedYears is the inclusive overlap of the two active intervals, with
// unknown bounds read from the WithYears window, and 0 unless both have a
// person record.
//
// Path is a hop-shortest route a..b through g and Hops its length; Detour
// is the same length with the direct a–b link removed. Both read
// Unreachable when no route exists within WithMaxHops, and Path is then
// empty.
func AnalyzePair(a, b string, g *network.Graph, co network.CoOccurrences, people network.People, pageRank score.Map, opts ...PairOption) Pair {
	o := defaultPairOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mutual := g.Mutual(a, b)
	if mutual == nil {
		mutual = []string{}
	}
	count := co.Count(a, b)

	strength := 0.0
	if w, ok := g.Weight(a, b); ok {
		strength = w
	}
	strength += CoOccurrenceBonus*float64(count) + MutualBonus*float64(len(mutual))

	path := shortestPath(g, a, b, o.maxHops, false)
	detour := shortestPath(g, a, b, o.maxHops, true)
	p := Pair{
		A:                a,
		B:                b,
		SharedYears:      SharedYears(people, a, b, o.startYear, o.currentYear),
		CoOccurrences:    count,
		MutualFriends:    mutual,
		StrengthScore:    strength,
		CombinedPageRank: pageRank[a] + pageRank[b],
		Relationship:     Classify(strength),
		Hops:             hops(path),
		Path:             path,
		Detour:           hops(detour),
	}
	if p.Path == nil {
		p.Path = []string{}
	}
	return p
}

// SharedYears is the number of years both a and b were active, with unknown
// bounds read as startYear and currentYear.
func SharedYears(people network.People, a, b string, startYear, currentYear int) int {
	pa, okA := people.Lookup(a)
	pb, okB := people.Lookup(b)
	if !okA || !okB {
		return 0
	}
	start := max(pa.First(startYear), pb.First(startYear))
	end := min(pa.Last(currentYear), pb.Last(currentYear))
	if start > end {
		return 0
	}
	return end - start + 1
}
