// SPDX-License-Identifier: MIT

// Package core defines the directed, doubly-weighted Edge type used by every
// monkeypath package, together with the adjacency builder and the small
// lookup helpers a game board needs to validate moves.
//
// What:
//
//   - Edge: a directed arc From→To carrying two independent non-negative
//     weights, Cost (banana energy) and Time (storm time).
//   - Arc: one outgoing (To, Cost, Time) triple of an adjacency bucket.
//   - BuildAdjacency: groups edges by source, preserving input order.
//   - FindEdge / Neighbors: first-match edge lookup and ordered one-hop
//     destinations, used to validate a move and compute clickable nodes.
//   - Nodes / Validate: first-seen node listing and well-formedness check.
//
// A graph is nothing more than an ordered []Edge. Nothing in this package keeps
// state between calls; every function is pure and safe for concurrent use as
// long as callers do not mutate the slice they pass in.
//
// Complexity:
//
//   - BuildAdjacency: Time O(E), Memory O(E)
//   - FindEdge:       Time O(E), Memory O(1)
//   - Neighbors:      Time O(E), Memory O(out-degree)
//   - Nodes:          Time O(E), Memory O(V)
//
// Errors (Validate only):
//
//   - ErrEmptyNodeID     an edge endpoint is the empty string
//   - ErrNegativeWeight  an edge carries a negative cost or time
package core
