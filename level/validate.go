// SPDX-License-Identifier: MIT

package level

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/monkeypath/constrained"
	"github.com/katalvlaran/monkeypath/core"
)

// Validate reports every structural problem of l at once. The returned error
// matches ErrInvalid and each individual sentinel through errors.Is.
//
// A level the storm always wins is structurally fine; see Solvable.
func Validate(l Level) error {
	var errs []error

	ids := make(map[string]struct{}, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID == "" {
			errs = append(errs, fmt.Errorf("node: %w", core.ErrEmptyNodeID))
			continue
		}
		if _, dup := ids[n.ID]; dup {
			errs = append(errs, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateID))
		}
		ids[n.ID] = struct{}{}
	}
	known := func(id string) bool {
		_, ok := ids[id]
		return ok
	}

	if !known(l.Start) {
		errs = append(errs, fmt.Errorf("start %q: %w", l.Start, ErrUnknownNode))
	}
	if !known(l.Goal) {
		errs = append(errs, fmt.Errorf("goal %q: %w", l.Goal, ErrUnknownNode))
	}
	if l.TimeLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrBadTimeLimit, l.TimeLimit))
	}
	if err := core.Validate(l.Edges); err != nil {
		errs = append(errs, err)
	}
	for _, id := range core.Nodes(l.Edges) {
		if id != "" && !known(id) {
			errs = append(errs, fmt.Errorf("edge endpoint %q: %w", id, ErrUnknownNode))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: level %d %q: %w", ErrInvalid, l.ID, l.Name, errors.Join(errs...))
	}

	return nil
}

// Solvable reports ErrUnsolvable when no route reaches the goal within the
// time limit. Such levels load and play normally; every run ends lost.
func Solvable(l Level) error {
	_, ok, err := constrained.Solve(l.Edges, l.Start, l.Goal, l.TimeLimit)
	switch {
	case err != nil:
		return fmt.Errorf("level %d %q: %w", l.ID, l.Name, err)
	case !ok:
		return fmt.Errorf("level %d %q: %w", l.ID, l.Name, ErrUnsolvable)
	}

	return nil
}
