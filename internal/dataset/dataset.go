// SPDX-License-Identifier: MIT

// Package dataset reads the personal-history exports that feed the
// analytics engines: the relationship constellation (nodes and links),
// pairwise co-occurrence counts and per-person activity arcs.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/constellation/network"
)

// File names inside a dataset directory.
const (
	ConstellationFile = "relationship_constellation.json"
	CoOccurrenceFile  = "co_occurrences.json"
	PersonArcFile     = "person_arc.json"
)

// Sentinel errors.
var (
	// ErrNoConstellation is returned when the constellation file is missing.
	ErrNoConstellation = errors.New("dataset: relationship constellation not found")

	// ErrDecode wraps JSON decoding failures.
	ErrDecode = errors.New("dataset: decode failed")
)

// Constellation is the node/link export.
type Constellation struct {
	Nodes []network.Node `json:"nodes"`
	Links []network.Link `json:"links"`
}

// CoOccurrence is one row of the co-occurrence export.
type CoOccurrence struct {
	PersonA string `json:"person_a"`
	PersonB string `json:"person_b"`
	Count   int    `json:"co_occurrence_count"`
	Year    int    `json:"year,omitempty"`
}

// Dataset is everything the engines consume.
type Dataset struct {
	Constellation Constellation
	CoOccurrences network.CoOccurrences
	People        network.People
}

// Graph builds the network.Graph of the constellation.
func (d *Dataset) Graph() *network.Graph {
	return network.Build(d.Constellation.Nodes, d.Constellation.Links)
}

// Load reads a dataset directory from disk.
func Load(dir string) (*Dataset, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads a dataset from fsys. The constellation is required; the
// co-occurrence and person-arc files are optional and default to empty.
// Co-occurrence rows for the same pair are summed, in either name order.
func LoadFS(fsys fs.FS) (*Dataset, error) {
	var c Constellation
	if err := readJSON(fsys, ConstellationFile, &c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConstellation, ConstellationFile)
		}
		return nil, err
	}

	var rows []CoOccurrence
	if err := readJSON(fsys, CoOccurrenceFile, &rows); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	co := make(network.CoOccurrences, len(rows))
	for _, r := range rows {
		if r.PersonA == "" || r.PersonB == "" {
			continue
		}
		co.Add(r.PersonA, r.PersonB, r.Count)
	}

	var arcs []network.Person
	if err := readJSON(fsys, PersonArcFile, &arcs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Dataset{
		Constellation: c,
		CoOccurrences: co,
		People:        network.IndexPeople(arcs),
	}, nil
}

// WriteConstellation writes c as the constellation file of dir, creating
// dir when needed.
func WriteConstellation(dir string, c Constellation) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataset: create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("dataset: encode constellation: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ConstellationFile), data, 0o644)
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	return nil
}
