// SPDX-License-Identifier: MIT

// Package relation scores the ties between pairs of people.
//
// Strengths rates every edge of a network.Graph from four signals: the link
// weight, co-occurrence counts, how recently the pair was active, and how
// many friends they share. AnalyzePair gives the same picture for any two
// names, linked or not, without the recency term, and adds shared years,
// combined PageRank, a categorical Relationship and the shortest route
// between the two (with its length once the direct link is removed).
//
// All results are keyed by network.PairKey, so (A,B) and (B,A) address one
// entry. Missing metadata never fails: without both person records the
// recency factor is 1, and an unknown last year reads as the current year.
package relation
