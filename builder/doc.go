// SPDX-License-Identifier: MIT

// Package builder produces deterministic social-graph fixtures (node and
// link lists) for tests, examples, benchmarks and the CLI `generate`
// command.
//
// One orchestrator, Build(opts, cons...), resolves functional options into
// an immutable config and runs constructors in order against a shared
// Fixture. Constructors validate their parameters first and return
// sentinel errors; they never panic.
//
// Topologies:
//
//	Path(n)          P_n, n ≥ 2
//	Star(n)          hub "Center" + n-1 leaves, n ≥ 2
//	Cycle(n)         C_n, n ≥ 3
//	Wheel(n)         C_{n-1} + hub "Center", n ≥ 4
//	Complete(n)      K_n, n ≥ 1
//	RandomSparse(n,p) Erdős–Rényi G(n,p), needs WithSeed/WithRand for 0<p<1
//
// Determinism: same options, seed and constructor order ⇒ identical
// fixtures, link order included.
package builder
