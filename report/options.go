// SPDX-License-Identifier: MIT

package report

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/health"
	"github.com/katalvlaran/constellation/network"
)

// DefaultTop is the length of each ranking.
const DefaultTop = 10

// Option configures Run.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	startYear   int
	currentYear int
	seed        int64
	sampleSize  int
	top         int
	pageRank    []centrality.PageRankOption
}

func defaultOptions() options {
	return options{
		logger:      zap.NewNop(),
		startYear:   network.DefaultStartYear,
		currentYear: network.DefaultCurrentYear,
		sampleSize:  health.DefaultSampleSize,
		top:         DefaultTop,
	}
}

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithYears sets the start and current year shared by every engine.
func WithYears(start, current int) Option {
	return func(o *options) {
		o.startYear = start
		o.currentYear = current
	}
}

// WithSeed seeds the health sampler.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithSampleSize sets the health sampler's source count.
func WithSampleSize(n int) Option {
	return func(o *options) { o.sampleSize = n }
}

// WithTop sets the ranking length; 0 keeps every entry.
func WithTop(n int) Option {
	return func(o *options) { o.top = n }
}

// WithPageRank forwards options to the PageRank engine.
func WithPageRank(opts ...centrality.PageRankOption) Option {
	return func(o *options) { o.pageRank = append(o.pageRank, opts...) }
}
