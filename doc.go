// SPDX-License-Identifier: MIT

// Package constellation is an in-memory analytics engine for the social
// graph of a personal-history dataset: who matters, who bridges, who clusters
// together, how strong each tie is, and how the whole network ages year by
// year.
//
// What is in the box?
//
//	A set of small, synchronous, dependency-light engines that all read one
//	immutable network.Graph:
//		• Centrality: PageRank, Brandes betweenness, local clustering
//		• Communities: greedy modularity optimization + color palette
//		• Ties: recency-decayed relationship strength, pairwise analysis
//		• Health: density, giant component, sampled path length, churn
//		• Gravity: weighted blend of every signal with percentile ranks
//		• Evolution: active/new/lost counts and category diversity per year
//
// Why this shape?
//
//   - Predictable – engines never fail; empty or degenerate input degrades
//     to empty maps and zero values
//   - Reproducible – fixed iteration orders, seeded sampling
//   - Comparable – every score map is min-max normalized into [0,1]
//
// Layout:
//
//	network/    - Node, Link, Person records; Build() → Graph; pair keys
//	score/      - score.Map, min-max Normalize, top-N rankings
//	bfs/        - breadth-first walks with hooks, depth limits and filters
//	centrality/ - PageRank, Betweenness, Clustering
//	community/  - Detect, Modularity, Palette
//	relation/   - Strengths, AnalyzePair, Classify
//	health/     - Analyze, Components
//	gravity/    - Compute, Ranked
//	evolution/  - Track
//	builder/    - deterministic synthetic graphs for tests and demos
//	report/     - concurrent full run + JSON/TOML encoding
//	cmd/constellation - the CLI
//
// Quick ASCII example:
//
//	    Ann───Bob
//	      \   /
//	       Cy───Dee───Eli
//
//	Cy and Dee carry every shortest path between the two sides, so they
//	top betweenness; Ann, Bob and Cy form the only triangle.
//
//	go install github.com/katalvlaran/constellation/cmd/constellation@latest
package constellation
