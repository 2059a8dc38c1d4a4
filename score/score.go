// SPDX-License-Identifier: MIT

// Package score holds the score-map type shared by every engine and the
// min-max normalizer (ScoreNormalizer) that rescales a map into [0,1].
//
// Zero-variance policy: when every value is equal the range is treated as 1,
// so all entries map to 0. An empty map normalizes to an empty map.
package score

import (
	"math"
	"sort"
)

// Map is a node name → score mapping.
type Map map[string]float64

// Item is one ranked entry.
type Item struct {
	Name  string  `json:"name" toml:"name"`
	Value float64 `json:"value" toml:"value"`
}

// Normalize returns a new Map rescaled so the minimum maps to exactly 0 and
// the maximum to exactly 1. m is not modified.
//
// Complexity: O(n).
func Normalize(m Map) Map {
	out := make(Map, len(m))
	if len(m) == 0 {
		return out
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range m {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for k, v := range m {
		switch v {
		case hi:
			if hi != lo {
				out[k] = 1
				continue
			}
			out[k] = 0
		case lo:
			out[k] = 0
		default:
			out[k] = (v - lo) / span
		}
	}
	return out
}

// Sorted returns all entries by descending value, ties broken by name.
func (m Map) Sorted() []Item {
	items := make([]Item, 0, len(m))
	for k, v := range m {
		items = append(items, Item{Name: k, Value: v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value == items[j].Value {
			return items[i].Name < items[j].Name
		}
		return items[i].Value > items[j].Value
	})
	return items
}

// Top returns the limit highest entries (all of them when limit <= 0).
func (m Map) Top(limit int) []Item {
	items := m.Sorted()
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
