// SPDX-License-Identifier: MIT

// Package builder generates synthetic directed edge lists for tests,
// benchmarks and level prototyping.
//
// Constructors:
//
//   - Chain(n):           0→1→…→n-1, exactly one path end to end.
//   - Ladder(rungs):      two rails with crossings, 2^rungs end-to-end paths.
//   - Layered(l, w):      source, l layers of w nodes fully linked layer to
//     layer, sink; w^l end-to-end paths.
//   - RandomDAG(n, p):    each forward pair i<j linked with probability p.
//
// Every constructor is deterministic for fixed options: node IDs come from
// the ID function, weights from the weight function, randomness only from the
// configured *rand.Rand. Generated graphs are acyclic, so the number of simple
// paths is easy to reason about in tests.
//
// Errors:
//
//   - ErrTooFewVertices       a size parameter is below its minimum
//   - ErrInvalidProbability   p is outside [0,1]
//   - ErrNeedRandSource       RandomDAG with 0<p<1 and no WithSeed/WithRand
package builder
