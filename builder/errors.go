// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape is returned by Shape for an unrecognised topology name.
var ErrUnknownShape = errors.New("builder: unknown shape")
