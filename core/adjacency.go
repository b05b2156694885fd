// SPDX-License-Identifier: MIT

package core

import "fmt"

// BuildAdjacency groups edges by their source node.
//
// Each bucket lists the (To, Cost, Time) triples in the order the edges were
// supplied, so a depth-first walk over the result visits branches in input
// order. An empty edge slice yields an empty, non-nil map.
//
// Complexity: Time O(E), Memory O(E).
func BuildAdjacency(edges []Edge) Adjacency {
	adj := make(Adjacency, len(edges))
	var e Edge
	for _, e = range edges {
		adj[e.From] = append(adj[e.From], Arc{To: e.To, Cost: e.Cost, Time: e.Time})
	}

	return adj
}

// FindEdge returns the first edge in supplied order going from → to.
// The boolean is false when no such edge exists; the Edge is then zero.
//
// Complexity: Time O(E).
func FindEdge(edges []Edge, from, to string) (Edge, bool) {
	for i := range edges {
		if edges[i].From == from && edges[i].To == to {
			return edges[i], true
		}
	}

	return Edge{}, false
}

// Neighbors returns the destinations of every edge leaving node, in supplied
// order. Parallel edges produce duplicate entries. The result is never nil.
//
// Complexity: Time O(E).
func Neighbors(edges []Edge, node string) []string {
	out := make([]string, 0, 4)
	for i := range edges {
		if edges[i].From == node {
			out = append(out, edges[i].To)
		}
	}

	return out
}

// Nodes lists every node ID that appears as an endpoint, in first-seen order.
//
// Complexity: Time O(E), Memory O(V).
func Nodes(edges []Edge) []string {
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for i := range edges {
		add(edges[i].From)
		add(edges[i].To)
	}

	return out
}

// Validate reports the first malformed edge, if any.
// The path functions never call it; it exists for loaders of external data.
func Validate(edges []Edge) error {
	for i, e := range edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("edge[%d] %q→%q: %w", i, e.From, e.To, ErrEmptyNodeID)
		}
		if e.Cost < 0 || e.Time < 0 {
			return fmt.Errorf("edge[%d] %s: %w", i, e, ErrNegativeWeight)
		}
	}

	return nil
}
