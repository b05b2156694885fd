// SPDX-License-Identifier: MIT

package paths

import (
	"context"
	"errors"
	"strings"
)

// ErrPathLimit indicates that Enumerate stopped after WithMaxPaths results.
// The paths collected so far are returned alongside it.
var ErrPathLimit = errors.New("paths: path limit reached")

// keySeparator joins node IDs in PathResult.Key.
const keySeparator = "→"

// PathResult describes one simple path from start to goal.
//
// Path[0] is the start, Path[len-1] is the goal and len(Path) >= 2.
// TotalCost and TotalTime are the sums of the traversed edge weights.
type PathResult struct {
	Path      []string `json:"path"`
	TotalCost int64    `json:"totalCost"`
	TotalTime int64    `json:"totalTime"`
}

// Key joins the node IDs with arrows, e.g. "A→C→B→D".
func (p PathResult) Key() string {
	return strings.Join(p.Path, keySeparator)
}

// Hops returns the number of edges on the path.
func (p PathResult) Hops() int {
	if len(p.Path) == 0 {
		return 0
	}

	return len(p.Path) - 1
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds the tunables of a single enumeration.
type Options struct {
	// Ctx is checked before every descent; defaults to context.Background().
	Ctx context.Context

	// MaxPaths, if positive, caps the number of results. Reaching the cap
	// aborts the walk with ErrPathLimit. Default 0 (no cap).
	MaxPaths int

	// MaxDepth, if non-negative, prunes branches longer than this many edges.
	// Default -1 (no limit).
	MaxDepth int

	// OnPath, if non-nil, is called with each result as it is discovered.
	// Returning an error aborts the walk with that error.
	OnPath func(PathResult) error
}

// DefaultOptions returns Options with a background context, no path cap,
// no depth limit and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxPaths: 0,
		MaxDepth: -1,
		OnPath:   nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of enumerated paths. n <= 0 disables the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// WithMaxDepth limits paths to at most limit edges. A negative limit disables it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnPath installs a hook called for every discovered path.
func WithOnPath(fn func(PathResult) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// Analysis bundles the three teaching stages computed from one enumeration.
type Analysis struct {
	// All lists every simple path in discovery order.
	All []PathResult

	// Feasible lists the paths of All with TotalTime <= TimeLimit, same order.
	Feasible []PathResult

	// Ranked is Feasible stable-sorted by TotalCost.
	Ranked []PathResult

	// Optimal is Ranked[0] when HasOptimal is true.
	Optimal    PathResult
	HasOptimal bool

	// TimeLimit is the budget the analysis was computed for.
	TimeLimit int64
}
