// SPDX-License-Identifier: MIT

package health

import (
	"math/rand"

	"github.com/katalvlaran/constellation/network"
)

// DefaultSampleSize caps the BFS sources of the path-length estimate.
const DefaultSampleSize = 50

// Activity windows, in years before the current year.
const (
	ActiveWithinYears = 3
	ChurnAfterYears   = 5
)

// Option configures Analyze.
type Option func(*Options)

// Options holds Analyze parameters.
type Options struct {
	CurrentYear int
	SampleSize  int
	Seed        int64
	Rand        *rand.Rand
}

// DefaultOptions returns current year 2026, 50 samples, default seed.
func DefaultOptions() Options {
	return Options{
		CurrentYear: network.DefaultCurrentYear,
		SampleSize:  DefaultSampleSize,
	}
}

// WithCurrentYear sets the reference year of the activity ratios.
func WithCurrentYear(year int) Option {
	return func(o *Options) { o.CurrentYear = year }
}

// WithSampleSize sets the number of sampled BFS sources. Values below 1
// keep DefaultSampleSize.
func WithSampleSize(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.SampleSize = n
		}
	}
}

// WithSeed seeds the sampling RNG; 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand installs a caller-owned RNG, overriding WithSeed. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
