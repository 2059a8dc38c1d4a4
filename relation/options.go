// SPDX-License-Identifier: MIT

package relation

import "github.com/katalvlaran/constellation/network"

// PairOption configures AnalyzePair.
type PairOption func(*pairOptions)

type pairOptions struct {
	startYear   int
	currentYear int
	maxHops     int
}

func defaultPairOptions() pairOptions {
	return pairOptions{
		startYear:   network.DefaultStartYear,
		currentYear: network.DefaultCurrentYear,
	}
}

// WithYears sets the window that resolves unknown first and last years.
func WithYears(start, current int) PairOption {
	return func(o *pairOptions) {
		o.startYear = start
		o.currentYear = current
	}
}

// WithMaxHops bounds the path search. 0 (the default) searches the whole
// component; negative values are ignored.
func WithMaxHops(n int) PairOption {
	return func(o *pairOptions) {
		if n >= 0 {
			o.maxHops = n
		}
	}
}
