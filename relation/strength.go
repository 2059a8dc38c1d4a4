// SPDX-License-Identifier: MIT

package relation

import (
	"math"

	"github.com/katalvlaran/constellation/network"
)

// Tuning of the strength formula.
const (
	// CoOccurrenceBonus is added per recorded co-occurrence.
	CoOccurrenceBonus = 0.3
	// MutualBonus is added per shared neighbor.
	MutualBonus = 0.1
	// HalfLifeYears halves recency for every such span of inactivity.
	HalfLifeYears = 4.0
	// DecayShare caps how much of the base strength recency may remove.
	DecayShare = 0.2
)

// Strength is the scored tie of one edge.
type Strength struct {
	Strength    float64 `json:"strength" toml:"strength"`
	Decay       float64 `json:"decay" toml:"decay"`
	Recency     float64 `json:"recency" toml:"recency"`
	MutualCount int     `json:"mutual_count" toml:"mutual_count"`
}

// Strengths scores every edge of g, keyed by network.PairKey.
//
// For an edge a–b:
//
//	base     = weight + CoOccurrenceBonus·co(a,b)
//	recency  = 0.5^((currentYear − max(last(a), last(b))) / HalfLifeYears)
//	           when both have a record, else 1
//	decay    = 1 + (recency − 1)·DecayShare
//	strength = base·decay + MutualBonus·|mutual(a,b)|
//
// A record without a last year counts as active in currentYear.
func Strengths(g *network.Graph, co network.CoOccurrences, people network.People, currentYear int) map[string]Strength {
	edges := g.Edges()
	out := make(map[string]Strength, len(edges))
	for _, e := range edges {
		a, b := string(e.Source), string(e.Target)
		key := network.PairKey(a, b)

		base := e.EffectiveWeight() + CoOccurrenceBonus*float64(co[key])
		recency := Recency(people, a, b, currentYear)
		decay := 1 + (recency-1)*DecayShare
		mutual := len(g.Mutual(a, b))

		out[key] = Strength{
			Strength:    base*decay + MutualBonus*float64(mutual),
			Decay:       decay,
			Recency:     recency,
			MutualCount: mutual,
		}
	}
	return out
}

// Recency is the half-life factor of the pair a–b, 1 unless both have a
// person record.
func Recency(people network.People, a, b string, currentYear int) float64 {
	pa, okA := people.Lookup(a)
	pb, okB := people.Lookup(b)
	if !okA || !okB {
		return 1
	}
	last := max(pa.Last(currentYear), pb.Last(currentYear))
	return math.Pow(0.5, float64(currentYear-last)/HalfLifeYears)
}
