// SPDX-License-Identifier: MIT

// Package paths enumerates every simple directed path between two nodes of a
// small doubly-weighted graph and derives from that enumeration the feasible
// subset under a time budget and the cheapest feasible (optimal) path.
//
// What:
//
//   - FindAllPaths: depth-first search with a path-local visited set. Results
//     are reported in discovery order, which equals edge-supplied order,
//     depth first. A branch stops at its first arrival at the goal.
//   - Enumerate: the same walk with functional options for cancellation,
//     a path cap, a depth cap and a per-path hook.
//   - FilterByTime: keeps paths with TotalTime <= limit, order preserved.
//   - RankByCost: stable ascending sort by TotalCost on a copy.
//   - OptimalPath: enumerate, filter, rank, take the first element. Ties on
//     cost resolve to the path discovered first.
//   - Analyze: all three stages from one enumeration.
//
// Why exhaustive search:
//
//	The callers display "every path" and "every path that beats the storm"
//	next to the optimum. A shortest-path algorithm cannot produce those lists,
//	so enumeration is the primary output and the optimum is derived from it.
//
// Complexity:
//
//   - FindAllPaths: Time O(b^L) with branching b and longest simple path L,
//     Memory O(V) for the walk plus the size of the result list.
//   - FilterByTime: Time O(P)
//   - RankByCost:   Time O(P log P)
//
// An empty result is an ordinary answer, never an error: disconnected nodes,
// start == goal and too-tight limits all yield an empty list or ok == false.
//
// Errors (Enumerate only):
//
//   - ErrPathLimit      more paths exist than WithMaxPaths allows
//   - context errors    the WithContext context was cancelled
//   - hook errors       returned by WithOnPath, wrapped
package paths
