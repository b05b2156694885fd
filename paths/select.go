// SPDX-License-Identifier: MIT

package paths

import (
	"sort"

	"github.com/katalvlaran/monkeypath/core"
)

// FilterByTime returns the paths whose TotalTime does not exceed limit,
// preserving their relative order. The result is never nil.
func FilterByTime(all []PathResult, limit int64) []PathResult {
	out := make([]PathResult, 0, len(all))
	for i := range all {
		if all[i].TotalTime <= limit {
			out = append(out, all[i])
		}
	}

	return out
}

// RankByCost returns a copy of ps sorted ascending by TotalCost.
// The sort is stable: equal-cost paths keep their discovery order.
func RankByCost(ps []PathResult) []PathResult {
	out := make([]PathResult, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCost < out[j].TotalCost
	})

	return out
}

// OptimalPath returns the cheapest path from start to goal whose total time
// is at most limit. ok is false when no such path exists.
func OptimalPath(edges []core.Edge, start, goal string, limit int64) (PathResult, bool) {
	a := Analyze(edges, start, goal, limit)

	return a.Optimal, a.HasOptimal
}

// Analyze enumerates once and derives the feasible and ranked lists.
func Analyze(edges []core.Edge, start, goal string, limit int64) Analysis {
	all := FindAllPaths(edges, start, goal)
	feasible := FilterByTime(all, limit)
	ranked := RankByCost(feasible)

	a := Analysis{
		All:       all,
		Feasible:  feasible,
		Ranked:    ranked,
		TimeLimit: limit,
	}
	if len(ranked) > 0 {
		a.Optimal = ranked[0]
		a.HasOptimal = true
	}

	return a
}
