// SPDX-License-Identifier: MIT

package game

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/monkeypath/paths"
)

// Sentinel errors returned by Session methods.
var (
	// ErrNotPlaying indicates a move or undo after the run has ended.
	ErrNotPlaying = errors.New("game: run is over")

	// ErrNoVine indicates there is no edge from the current tree to the target.
	ErrNoVine = errors.New("game: no vine between trees")

	// ErrNothingToUndo indicates Undo at the start tree.
	ErrNothingToUndo = errors.New("game: nothing to undo")
)

// State is the lifecycle of a run.
type State int

const (
	Playing State = iota // Playing: moves are accepted.
	Won                  // Won: the goal was reached within the time limit.
	Lost                 // Lost: time spent exceeded the limit.
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome classifies a run against the level optimum.
type Outcome int

const (
	InProgress Outcome = iota // InProgress: the run has not ended.
	Optimal                   // Optimal: won at the cheapest feasible cost.
	Suboptimal                // Suboptimal: won, but a cheaper feasible route exists.
	Failed                    // Failed: the storm arrived first.
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Optimal:
		return "optimal"
	case Suboptimal:
		return "suboptimal"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is a snapshot of a run and its verdict.
type Result struct {
	SessionID string
	LevelID   int
	State     State
	Outcome   Outcome

	// Path is the sequence of trees visited, starting at the level start.
	Path []string
	Cost int64
	Time int64

	// Optimal is the cheapest feasible route when HasOptimal is true.
	// HasOptimal is false when no route beats the storm at all.
	Optimal    paths.PathResult
	HasOptimal bool
}

// Overspend is how much more energy the run used than the optimum.
// It is zero while playing, after a loss, or when no optimum exists.
func (r Result) Overspend() int64 {
	if r.State != Won || !r.HasOptimal {
		return 0
	}

	return r.Cost - r.Optimal.TotalCost
}

// Recorder receives session telemetry. metrics.Collector implements it.
type Recorder interface {
	// RecordAnalysis reports one level enumeration.
	RecordAnalysis(levelID int, found int, elapsed time.Duration)
	// RecordMove reports an attempted move and whether it was accepted.
	RecordMove(levelID int, accepted bool)
	// RecordOutcome reports a finished run.
	RecordOutcome(levelID int, outcome Outcome)
}

// nopRecorder discards telemetry.
type nopRecorder struct{}

func (nopRecorder) RecordAnalysis(int, int, time.Duration) {}
func (nopRecorder) RecordMove(int, bool)                   {}
func (nopRecorder) RecordOutcome(int, Outcome)             {}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	recorder Recorder
	idFn     func() string
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: nopRecorder{},
		idFn:     uuid.NewString,
	}
}

// WithLogger routes session logs to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecorder installs a telemetry sink. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithIDFunc overrides the session ID generator (uuid.NewString by default).
func WithIDFunc(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.idFn = fn
		}
	}
}
