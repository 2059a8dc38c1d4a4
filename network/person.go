// SPDX-License-Identifier: MIT
//
// File: person.go
// Role: Optional per-person temporal metadata and its name index.
//
// Policy:
//   - A zero FirstYear or LastYear inside a record means "unknown"; callers
//     resolve it against their own year window (First/Last helpers).
//   - Absent records are not an error: engines substitute neutral defaults.

package network

import "encoding/json"

// Person is the temporal metadata of one node.
type Person struct {
	Name          string `json:"name"`
	FirstYear     int    `json:"first_year,omitempty"`
	LastYear      int    `json:"last_year,omitempty"`
	TotalMentions int    `json:"total_mentions,omitempty"`
	Category      string `json:"category,omitempty"`
}

// UnmarshalJSON accepts both naming schemes of the dataset exports:
// "name" or "person" for the identifier, "total_mentions" or
// "mention_count" for the mention total.
func (p *Person) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name          string `json:"name"`
		Person        string `json:"person"`
		FirstYear     int    `json:"first_year"`
		LastYear      int    `json:"last_year"`
		TotalMentions int    `json:"total_mentions"`
		MentionCount  int    `json:"mention_count"`
		Category      string `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	name := raw.Name
	if name == "" {
		name = raw.Person
	}
	mentions := raw.TotalMentions
	if mentions == 0 {
		mentions = raw.MentionCount
	}

	*p = Person{
		Name:          name,
		FirstYear:     raw.FirstYear,
		LastYear:      raw.LastYear,
		TotalMentions: mentions,
		Category:      raw.Category,
	}
	return nil
}

// First returns FirstYear, or fallback when it is unknown.
func (p Person) First(fallback int) int {
	if p.FirstYear == 0 {
		return fallback
	}
	return p.FirstYear
}

// Last returns LastYear, or fallback when it is unknown.
func (p Person) Last(fallback int) int {
	if p.LastYear == 0 {
		return fallback
	}
	return p.LastYear
}

// Span is the inclusive number of active years, resolving unknown bounds
// against [startYear, currentYear].
func (p Person) Span(startYear, currentYear int) int {
	return p.Last(currentYear) - p.First(startYear) + 1
}

// ActiveIn reports whether year falls inside the person's resolved interval.
func (p Person) ActiveIn(year, startYear, currentYear int) bool {
	return p.First(startYear) <= year && year <= p.Last(currentYear)
}

// People indexes Person records by name.
type People map[string]Person

// IndexPeople builds a People index. Records without a name are skipped;
// when a name repeats, the last record wins.
func IndexPeople(records []Person) People {
	people := make(People, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		people[rec.Name] = rec
	}
	return people
}

// Lookup returns the record for name and whether one exists. A nil People
// behaves as an empty index.
func (p People) Lookup(name string) (Person, bool) {
	rec, ok := p[name]
	return rec, ok
}
