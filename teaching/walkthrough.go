// SPDX-License-Identifier: MIT

package teaching

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/monkeypath/core"
	"github.com/katalvlaran/monkeypath/level"
	"github.com/katalvlaran/monkeypath/paths"
)

// Stage identifies one step of the walkthrough.
type Stage int

const (
	FindAll      Stage = iota // FindAll lists every simple route.
	FilterByTime              // FilterByTime marks routes that beat the storm.
	PickCheapest              // PickCheapest ranks feasible routes by cost.
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case FindAll:
		return "Find All Paths"
	case FilterByTime:
		return "Filter by Time"
	case PickCheapest:
		return "Pick Cheapest"
	default:
		return "unknown"
	}
}

// Entry is one route as displayed in a stage.
type Entry struct {
	Path paths.PathResult
	Key  string

	// Valid is false only in FilterByTime, for routes over the limit.
	Valid bool

	// OverTime is true when the route exceeds the time limit.
	OverTime bool

	// Best marks the first ranked route in PickCheapest.
	Best bool
}

// Step is one page of the walkthrough.
type Step struct {
	Stage     Stage
	TimeLimit int64
	Entries   []Entry
}

// Walkthrough is the full three-page explanation.
type Walkthrough struct {
	Steps      [3]Step
	Optimal    paths.PathResult
	HasOptimal bool
}

// Build explains level l.
func Build(l level.Level) Walkthrough {
	return BuildFor(l.Edges, l.Start, l.Goal, l.TimeLimit)
}

// BuildFor explains the route choice from start to goal under limit.
func BuildFor(edges []core.Edge, start, goal string, limit int64) Walkthrough {
	a := paths.Analyze(edges, start, goal, limit)

	wt := Walkthrough{Optimal: a.Optimal, HasOptimal: a.HasOptimal}
	wt.Steps[FindAll] = Step{Stage: FindAll, TimeLimit: limit, Entries: entries(a.All, limit, false)}
	wt.Steps[FilterByTime] = Step{Stage: FilterByTime, TimeLimit: limit, Entries: entries(a.All, limit, true)}

	ranked := entries(a.Ranked, limit, false)
	if len(ranked) > 0 {
		ranked[0].Best = true
	}
	wt.Steps[PickCheapest] = Step{Stage: PickCheapest, TimeLimit: limit, Entries: ranked}

	return wt
}

func entries(ps []paths.PathResult, limit int64, strike bool) []Entry {
	out := make([]Entry, 0, len(ps))
	for _, p := range ps {
		over := p.TotalTime > limit
		out = append(out, Entry{
			Path:     p,
			Key:      p.Key(),
			Valid:    !(strike && over),
			OverTime: over,
		})
	}

	return out
}

// Render writes a plain-text version of wt, one stage per block.
func Render(w io.Writer, wt Walkthrough) error {
	var b strings.Builder
	for i, st := range wt.Steps {
		fmt.Fprintf(&b, "%d. %s", i+1, st.Stage)
		if st.Stage == FilterByTime {
			fmt.Fprintf(&b, " (limit %d)", st.TimeLimit)
		}
		b.WriteString("\n")
		if len(st.Entries) == 0 {
			b.WriteString("   (no paths)\n")
		}
		for _, e := range st.Entries {
			fmt.Fprintf(&b, "   %-20s energy %3d  time %3d", strings.Join(e.Path.Path, " → "), e.Path.TotalCost, e.Path.TotalTime)
			switch {
			case e.Best:
				b.WriteString("  * optimal")
			case st.Stage == FilterByTime && !e.Valid:
				b.WriteString("  x too slow")
			}
			b.WriteString("\n")
		}
	}
	if !wt.HasOptimal {
		b.WriteString("The storm beats every route.\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}
