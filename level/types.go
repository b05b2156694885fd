// SPDX-License-Identifier: MIT

package level

import (
	"errors"

	"github.com/katalvlaran/monkeypath/core"
)

// Sentinel errors reported by Parse, Validate and Solvable.
var (
	// ErrNoLevels indicates a document with an empty levels list.
	ErrNoLevels = errors.New("level: no levels defined")

	// ErrDuplicateID indicates two levels, or two nodes of one level, sharing an ID.
	ErrDuplicateID = errors.New("level: duplicate ID")

	// ErrUnknownNode indicates a start, goal or edge endpoint not declared in Nodes.
	ErrUnknownNode = errors.New("level: unknown node")

	// ErrBadTimeLimit indicates a negative time limit.
	ErrBadTimeLimit = errors.New("level: time limit must be non-negative")

	// ErrUnsolvable indicates that no route reaches the goal within the time limit.
	ErrUnsolvable = errors.New("level: goal unreachable within time limit")

	// ErrLocked indicates a level whose predecessor has not been completed.
	ErrLocked = errors.New("level: locked")

	// ErrInvalid wraps the accumulated problems of a level that failed Validate.
	ErrInvalid = errors.New("level: invalid")
)

// Node is a tree on the board. Coordinates are percentages (0–100) of the
// board size and only matter to renderers.
type Node struct {
	ID    string  `yaml:"id" json:"id"`
	Label string  `yaml:"label" json:"label"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Start bool    `yaml:"start,omitempty" json:"isStart,omitempty"`
	Goal  bool    `yaml:"goal,omitempty" json:"isGoal,omitempty"`
}

// Level is one puzzle: a graph, its endpoints and the storm budget.
type Level struct {
	ID          int         `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Nodes       []Node      `yaml:"nodes" json:"nodes"`
	Edges       []core.Edge `yaml:"edges" json:"edges"`
	TimeLimit   int64       `yaml:"time_limit" json:"timeLimit"`
	Start       string      `yaml:"start" json:"startNode"`
	Goal        string      `yaml:"goal" json:"goalNode"`
}

// Node returns the node with the given ID.
func (l Level) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// document is the top-level YAML shape.
type document struct {
	Levels []Level `yaml:"levels"`
}
