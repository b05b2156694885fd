// SPDX-License-Identifier: MIT

package constrained

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrEmptySource indicates that the start node ID is empty.
	ErrEmptySource = errors.New("constrained: start node ID is empty")

	// ErrNegativeWeight indicates an edge with negative cost or time.
	ErrNegativeWeight = errors.New("constrained: negative edge weight encountered")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("constrained: time limit must be non-negative")
)

// Result is the cheapest feasible route found by Solve.
type Result struct {
	// Path lists node IDs from start to goal inclusive.
	Path []string

	// Cost is the total cost of Path; minimal among feasible routes.
	Cost int64

	// Time is the total time of Path; Time <= the budget.
	Time int64
}
