// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/monkeypath/core"
	"github.com/katalvlaran/monkeypath/level"
	"github.com/katalvlaran/monkeypath/paths"
)

// Session is one run through a level.
type Session struct {
	mu       sync.Mutex
	id       string
	lvl      level.Level
	logger   *slog.Logger
	recorder Recorder
	analysis paths.Analysis

	path  []string
	cost  int64
	time  int64
	state State
}

// NewSession starts a run at l.Start. The level optimum is computed once here.
func NewSession(l level.Level, opts ...Option) *Session {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	began := time.Now()
	a := paths.Analyze(l.Edges, l.Start, l.Goal, l.TimeLimit)
	o.recorder.RecordAnalysis(l.ID, len(a.All), time.Since(began))

	id := o.idFn()
	s := &Session{
		id:       id,
		lvl:      l,
		logger:   o.logger.With("session", id, "level", l.ID),
		recorder: o.recorder,
		analysis: a,
	}
	s.reset()
	s.logger.Debug("session started", "paths", len(a.All), "feasible", len(a.Feasible))

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Level returns the level being played.
func (s *Session) Level() level.Level { return s.lvl }

// Analysis returns the enumeration the verdict is based on.
func (s *Session) Analysis() paths.Analysis { return s.analysis }

// Current returns the tree the player stands on.
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current()
}

// State returns the run state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Clickable lists the trees reachable by one vine from the current tree,
// in edge order. It is empty once the run has ended.
func (s *Session) Clickable() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Playing {
		return []string{}
	}

	return core.Neighbors(s.lvl.Edges, s.current())
}

// Move swings from the current tree to node.
//
// The move is applied before the verdict: exceeding the time limit loses the
// run even if node is the goal.
func (s *Session) Move(node string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Playing {
		s.recorder.RecordMove(s.lvl.ID, false)
		return ErrNotPlaying
	}
	from := s.current()
	e, ok := core.FindEdge(s.lvl.Edges, from, node)
	if !ok {
		s.recorder.RecordMove(s.lvl.ID, false)
		return fmt.Errorf("%w: %s→%s", ErrNoVine, from, node)
	}

	s.path = append(s.path, node)
	s.cost += e.Cost
	s.time += e.Time
	s.recorder.RecordMove(s.lvl.ID, true)
	s.logger.Debug("move", "from", from, "to", node, "cost", s.cost, "time", s.time)

	switch {
	case s.time > s.lvl.TimeLimit:
		s.finish(Lost)
	case node == s.lvl.Goal:
		s.finish(Won)
	}

	return nil
}

// Undo removes the last vine and refunds its cost and time.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Playing {
		return ErrNotPlaying
	}
	if len(s.path) <= 1 {
		return ErrNothingToUndo
	}
	last := s.path[len(s.path)-1]
	prev := s.path[len(s.path)-2]
	e, ok := core.FindEdge(s.lvl.Edges, prev, last)
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrNoVine, prev, last)
	}

	s.path = s.path[:len(s.path)-1]
	s.cost -= e.Cost
	s.time -= e.Time
	s.logger.Debug("undo", "back_to", prev, "cost", s.cost, "time", s.time)

	return nil
}

// Reset restarts the run from the start tree, keeping the session ID.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.logger.Debug("session reset")
}

// Result snapshots the run and classifies it.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Result{
		SessionID:  s.id,
		LevelID:    s.lvl.ID,
		State:      s.state,
		Outcome:    s.outcome(),
		Path:       append([]string(nil), s.path...),
		Cost:       s.cost,
		Time:       s.time,
		Optimal:    s.analysis.Optimal,
		HasOptimal: s.analysis.HasOptimal,
	}
}

func (s *Session) reset() {
	s.path = append(s.path[:0], s.lvl.Start)
	s.cost = 0
	s.time = 0
	s.state = Playing
}

func (s *Session) current() string {
	return s.path[len(s.path)-1]
}

func (s *Session) outcome() Outcome {
	switch s.state {
	case Lost:
		return Failed
	case Won:
		if s.analysis.HasOptimal && s.cost == s.analysis.Optimal.TotalCost {
			return Optimal
		}
		return Suboptimal
	default:
		return InProgress
	}
}

// finish ends the run; callers hold s.mu.
func (s *Session) finish(st State) {
	s.state = st
	o := s.outcome()
	s.recorder.RecordOutcome(s.lvl.ID, o)
	s.logger.Info("run finished", "state", st.String(), "outcome", o.String(),
		"path", paths.PathResult{Path: s.path}.Key(), "cost", s.cost, "time", s.time)
}

// Replay plays route (starting with the level start) in a fresh session and
// returns its result. Moves after the run ends are rejected with ErrNotPlaying.
func Replay(l level.Level, route []string, opts ...Option) (Result, error) {
	s := NewSession(l, opts...)
	if len(route) == 0 {
		return s.Result(), nil
	}
	if route[0] != l.Start {
		return s.Result(), fmt.Errorf("%w: route starts at %q, level starts at %q", ErrNoVine, route[0], l.Start)
	}
	for _, node := range route[1:] {
		if err := s.Move(node); err != nil {
			return s.Result(), err
		}
	}

	return s.Result(), nil
}
