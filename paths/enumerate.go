// SPDX-License-Identifier: MIT

package paths

import (
	"fmt"

	"github.com/katalvlaran/monkeypath/core"
)

// walker holds the mutable state of one enumeration. It never outlives the call.
type walker struct {
	adj     core.Adjacency
	goal    string
	opts    Options
	path    []string
	visited map[string]bool
	cost    int64
	time    int64
	results []PathResult
}

// FindAllPaths returns every simple directed path from start to goal in
// discovery order. The adjacency is rebuilt from edges on every call.
//
// The result is empty (never nil) when goal is unreachable or start == goal.
func FindAllPaths(edges []core.Edge, start, goal string) []PathResult {
	// Without options the walk cannot fail.
	res, _ := Enumerate(edges, start, goal)

	return res
}

// Enumerate performs the same walk as FindAllPaths honouring opts.
// On error it returns the paths found before the walk was aborted.
func Enumerate(edges []core.Edge, start, goal string, opts ...Option) ([]PathResult, error) {
	// 1. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. A zero-edge "path" is not a path; see DESIGN.md.
	if start == goal {
		return []PathResult{}, nil
	}

	// 3. Fresh per-call state
	w := &walker{
		adj:     core.BuildAdjacency(edges),
		goal:    goal,
		opts:    o,
		path:    make([]string, 1, 8),
		visited: map[string]bool{start: true},
		results: make([]PathResult, 0, 4),
	}
	w.path[0] = start

	// 4. Walk
	if err := w.descend(start); err != nil {
		return w.results, err
	}

	return w.results, nil
}

// descend explores every unvisited successor of id, backtracking after each.
func (w *walker) descend(id string) error {
	// 1. Record and stop at the first arrival at goal.
	if id == w.goal {
		return w.record()
	}

	// 2. Depth prune
	if w.opts.MaxDepth >= 0 && len(w.path)-1 >= w.opts.MaxDepth {
		return nil
	}

	// 3. Expand in edge-insertion order
	var a core.Arc
	for _, a = range w.adj[id] {
		if w.visited[a.To] {
			continue
		}

		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.visited[a.To] = true
		w.path = append(w.path, a.To)
		w.cost += a.Cost
		w.time += a.Time

		err := w.descend(a.To)

		w.time -= a.Time
		w.cost -= a.Cost
		w.path = w.path[:len(w.path)-1]
		delete(w.visited, a.To)

		if err != nil {
			return err
		}
	}

	return nil
}

// record snapshots the current path into the result list.
func (w *walker) record() error {
	if w.opts.MaxPaths > 0 && len(w.results) >= w.opts.MaxPaths {
		return fmt.Errorf("%w: %d", ErrPathLimit, w.opts.MaxPaths)
	}

	snap := make([]string, len(w.path))
	copy(snap, w.path)
	pr := PathResult{Path: snap, TotalCost: w.cost, TotalTime: w.time}
	w.results = append(w.results, pr)

	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(pr); err != nil {
			return fmt.Errorf("paths: OnPath hook for %q: %w", pr.Key(), err)
		}
	}

	return nil
}
