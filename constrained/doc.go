// SPDX-License-Identifier: MIT

// Package constrained computes the cheapest start→goal route whose total time
// stays within a budget, using label-setting search over (node, elapsed time)
// states.
//
// It is a validation tool, not a replacement for paths.FindAllPaths: it yields
// only the optimum, never the list of alternatives the game shows. Level
// loading uses it to reject unsolvable levels, and the test suite uses it to
// cross-check the enumerator's optimum on random graphs.
//
// Algorithm:
//
//	Labels (node, cost, time) are popped from a min-heap ordered by cost then
//	time. A popped label is discarded when a label already settled at the same
//	node has time <= its time (it is dominated, since settled labels are never
//	more expensive). Arcs that would overrun the budget are not relaxed. The
//	first goal label popped is optimal.
//
//	With non-negative weights, removing a cycle from a walk never raises cost
//	or time, so the optimum over walks equals the optimum over simple paths.
//
// Complexity:
//
//   - Time:  O(L log L) where L <= V·(distinct arrival times) labels.
//   - Space: O(L).
//
// Errors (sentinel):
//
//   - ErrEmptySource      start is the empty string
//   - ErrNegativeWeight   an edge has negative cost or time
//   - ErrBadTimeLimit     the budget is negative
package constrained
