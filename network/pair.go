// SPDX-License-Identifier: MIT

package network

import "strings"

// PairKey joins a and b in lexicographic order with PairSeparator, so that
// PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + PairSeparator + b
}

// SplitPairKey reverses PairKey. ok is false when key has no separator.
func SplitPairKey(key string) (a, b string, ok bool) {
	return strings.Cut(key, PairSeparator)
}

// CoOccurrences counts joint appearances per pair key.
type CoOccurrences map[string]int

// Add increments the a–b count by n.
func (c CoOccurrences) Add(a, b string, n int) {
	c[PairKey(a, b)] += n
}

// Count returns the a–b count (0 when absent or when c is nil).
func (c CoOccurrences) Count(a, b string) int {
	return c[PairKey(a, b)]
}
