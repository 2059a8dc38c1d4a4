// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Boundary records (Node, Endpoint, Link, Person) and shared constants.

package network

import (
	"bytes"
	"encoding/json"
)

// PairSeparator joins the two sorted names of a pair key.
const PairSeparator = "|"

// DefaultWeight is the weight of a link that carries none (or zero).
const DefaultWeight = 1.0

// Reference years of the personal-history dataset. Engines that need a year
// window default to [DefaultStartYear, DefaultCurrentYear].
const (
	DefaultStartYear   = 2004
	DefaultCurrentYear = 2026
)

// Endpoint is a node reference inside a Link. It decodes from a JSON string
// or from any object carrying a "name" field.
type Endpoint string

// UnmarshalJSON accepts "Alice" and {"name":"Alice", ...}. Any other shape
// (null, numbers, objects without a name) decodes to the empty Endpoint,
// which Build later discards.
func (e *Endpoint) UnmarshalJSON(data []byte) error {
	*e = Endpoint(decodeName(data))
	return nil
}

// Node is a vertex record. Only Name takes part in analytics.
type Node struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// UnmarshalJSON accepts a bare string or a {"name":...} record.
func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*n = Node{Name: s}
		return nil
	}

	type plain Node
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*n = Node(p)
	return nil
}

// Link is an undirected edge between two endpoints. A zero Weight means
// "unspecified" and is read as DefaultWeight.
type Link struct {
	Source Endpoint `json:"source"`
	Target Endpoint `json:"target"`
	Weight float64  `json:"weight,omitempty"`
}

// EffectiveWeight returns Weight, or DefaultWeight when Weight is zero.
func (l Link) EffectiveWeight() float64 {
	if l.Weight == 0 {
		return DefaultWeight
	}
	return l.Weight
}

// Nodes wraps bare names into Node records.
func Nodes(names ...string) []Node {
	out := make([]Node, len(names))
	for i, name := range names {
		out[i] = Node{Name: name}
	}
	return out
}

// Edge returns an unweighted Link between a and b.
func Edge(a, b string) Link {
	return Link{Source: Endpoint(a), Target: Endpoint(b)}
}

// WeightedEdge returns a Link between a and b carrying weight w.
func WeightedEdge(a, b string, w float64) Link {
	return Link{Source: Endpoint(a), Target: Endpoint(b), Weight: w}
}

// decodeName extracts a name from a JSON string or a record with "name".
func decodeName(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '{':
		var rec struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return ""
		}
		return rec.Name
	default:
		return ""
	}
}
