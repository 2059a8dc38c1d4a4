// SPDX-License-Identifier: MIT
//
// config.go - resolved builder configuration and functional options.
//
// Contract:
//   - Options are applied in order; the last one touching a field wins.
//   - nil functions and nil RNGs are ignored rather than stored.
//   - Without WithSeed or WithRand, cfg.rng stays nil and only
//     deterministic constructors (or p ∈ {0,1}) can run.
//
// Determinism:
//   - Default names are decimal indices and default weights are constant.

package builder

import (
	"math/rand"
	"strconv"
)

// Option configures a Build call.
type Option func(*config)

// config is the immutable result of option resolution.
type config struct {
	// idFn maps a vertex index to its name.
	idFn func(int) string
	// rng drives RandomSparse and weightFn; nil unless set.
	rng *rand.Rand
	// weightFn decides each emitted link weight.
	weightFn func(*rand.Rand) float64
}

const defaultConstWeight = 1.0

// CenterName is the fixed name of the hub in Star and Wheel.
const CenterName = "Center"

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the index → name function. nil keeps the default
// decimal scheme ("0","1",...).
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSymbolIDs names vertices "A","B",... and continues spreadsheet-style
// ("AA","AB",...) past "Z".
func WithSymbolIDs() Option {
	return WithIDScheme(ExcelColumnID)
}

// WithPrefixIDs names vertices prefix+index, e.g. "p0","p1".
func WithPrefixIDs(prefix string) Option {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn sets the link weight policy. nil is ignored.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// ExcelColumnID maps 0→"A", 25→"Z", 26→"AA". Negative indices map to "".
func ExcelColumnID(idx int) string {
	if idx < 0 {
		return ""
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
