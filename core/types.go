// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Validate.
var (
	// ErrEmptyNodeID indicates an edge whose From or To is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeWeight indicates an edge with a negative cost or time.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a directed connection between two nodes.
//
// Cost and Time are independent weights; neither is derived from the other.
// Edges are treated as immutable values once handed to any function here.
type Edge struct {
	// From is the source node ID.
	From string `yaml:"from" json:"from"`

	// To is the destination node ID.
	To string `yaml:"to" json:"to"`

	// Cost is the energy spent traversing the edge.
	Cost int64 `yaml:"cost" json:"cost"`

	// Time is the storm time consumed traversing the edge.
	Time int64 `yaml:"time" json:"time"`
}

// String renders the edge as "A→B (cost 7, time 3)".
func (e Edge) String() string {
	return fmt.Sprintf("%s→%s (cost %d, time %d)", e.From, e.To, e.Cost, e.Time)
}

// Arc is one outgoing triple stored in an adjacency bucket.
type Arc struct {
	To   string
	Cost int64
	Time int64
}

// Adjacency maps a node ID to its outgoing arcs in edge-insertion order.
// Nodes without outgoing edges have no entry.
type Adjacency map[string][]Arc
