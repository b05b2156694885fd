// SPDX-License-Identifier: MIT

package constrained

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/monkeypath/core"
)

// Solve returns the minimum-cost route from start to goal with total time at
// most limit. ok is false when no such route exists, including start == goal.
//
// Preconditions, checked in order:
//  1. start is non-empty (ErrEmptySource).
//  2. limit >= 0 (ErrBadTimeLimit).
//  3. no edge has negative cost or time (ErrNegativeWeight).
func Solve(edges []core.Edge, start, goal string, limit int64) (Result, bool, error) {
	// 1) Validate inputs
	if start == "" {
		return Result{}, false, ErrEmptySource
	}
	if limit < 0 {
		return Result{}, false, fmt.Errorf("%w: got %d", ErrBadTimeLimit, limit)
	}
	var e core.Edge
	for _, e = range edges {
		if e.Cost < 0 || e.Time < 0 {
			return Result{}, false, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
		}
	}

	// 2) Trivial routes are not routes.
	if start == goal {
		return Result{}, false, nil
	}

	// 3) Run
	r := &runner{
		adj:     core.BuildAdjacency(edges),
		goal:    goal,
		limit:   limit,
		settled: make(map[string]int64),
		pq:      make(labelPQ, 0, len(edges)+1),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &label{node: start})

	best := r.process()
	if best == nil {
		return Result{}, false, nil
	}

	return Result{Path: best.path(), Cost: best.cost, Time: best.time}, true, nil
}

// runner holds the mutable state of one Solve call.
type runner struct {
	adj     core.Adjacency
	goal    string
	limit   int64
	settled map[string]int64 // node → smallest settled arrival time
	pq      labelPQ
}

// process pops labels until the goal is settled or the heap drains.
func (r *runner) process() *label {
	for r.pq.Len() > 0 {
		l := heap.Pop(&r.pq).(*label)

		// Dominated: an earlier label here was no more expensive and no slower.
		if t, ok := r.settled[l.node]; ok && t <= l.time {
			continue
		}
		r.settled[l.node] = l.time

		if l.node == r.goal {
			return l
		}
		r.relax(l)
	}

	return nil
}

// relax pushes a successor label for every arc that fits in the budget.
func (r *runner) relax(l *label) {
	var a core.Arc
	for _, a = range r.adj[l.node] {
		t := l.time + a.Time
		if t > r.limit {
			continue
		}
		if st, ok := r.settled[a.To]; ok && st <= t {
			continue
		}
		heap.Push(&r.pq, &label{node: a.To, cost: l.cost + a.Cost, time: t, prev: l})
	}
}

// label is one (node, cost, time) state with a back-pointer for path recovery.
type label struct {
	node string
	cost int64
	time int64
	prev *label
}

// path walks prev pointers back to the start.
func (l *label) path() []string {
	n := 0
	for cur := l; cur != nil; cur = cur.prev {
		n++
	}
	out := make([]string, n)
	for cur := l; cur != nil; cur = cur.prev {
		n--
		out[n] = cur.node
	}

	return out
}

// labelPQ is a min-heap of labels ordered by cost, then time.
type labelPQ []*label

func (pq labelPQ) Len() int { return len(pq) }

func (pq labelPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].time < pq[j].time
}

func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*label)) }

func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
